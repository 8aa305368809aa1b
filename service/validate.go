package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"Shelf/models"
	"Shelf/types"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	colorPattern = regexp.MustCompile(`^(#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})|[a-zA-Z]{3,20})$`)

	maxRating = decimal.NewFromInt(5)
)

const msgStatusInvalid = "Status must be draft, published, or archived."

// 字段级文案，未列出的按规则生成
var fieldMessages = map[string]string{
	"name.required":           "Product name is required.",
	"price.required":          "Product price is required.",
	"affiliate_link.required": "Affiliate link is required.",
	"affiliate_link.http_url": "Affiliate link must be a valid URL.",
	"description.required":    "Product description is required.",
	"status.required":         "Product status is required.",
	"slug.slug":               "The slug may only contain lowercase letters, numbers and hyphens.",
	"color.color":             "The color must be a hex code or a color name.",
	"tag.name.required":       "Tag name is required.",
	"username.required":       "Username is required.",
	"password.required":       "Password is required.",
	"gallery_images.required": "Gallery images may not contain empty entries.",
	"gallery_images.max":      "Each gallery image may not be greater than 1024 characters.",
	"meta_description.max":    "The meta description may not be greater than 500 characters.",
	"meta_title.max":          "The meta title may not be greater than 255 characters.",
	"price.numeric":           "Price must be a valid number.",
	"original_price.numeric":  "Original price must be a valid number.",
	"rating.numeric":          "Rating must be a valid number.",
	"tags.array":              msgTagsInvalid,
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || slugPattern.MatchString(s)
	})
	_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || colorPattern.MatchString(s)
	})
	return v
}

// validateStruct 把 validator 的错误转成字段文案。prefix 用于区分同名字段的文案，如 "tag."
func validateStruct(prefix string, s any) *ValidationError {
	ve := NewValidationError()
	err := validate.Struct(s)
	if err == nil {
		return ve
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		ve.Add("_", err.Error())
		return ve
	}
	for _, fe := range errs {
		field := fieldName(fe)
		ve.Add(field, message(prefix, field, fe))
	}
	return ve
}

// fieldName gallery_images[2] 归并为 gallery_images
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func message(prefix, field string, fe validator.FieldError) string {
	if prefix != "" {
		if msg, ok := fieldMessages[prefix+field+"."+fe.Tag()]; ok {
			return msg
		}
	}
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", label, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url", "http_url":
		return fmt.Sprintf("The %s must be a valid URL.", label)
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}

// FieldTypeErrors 把请求体逐字段解码到 target 对应字段的类型上，收集类型不符的字段。
// body 不是 JSON 对象或 target 不是结构体时返回空结果
func FieldTypeErrors(body []byte, target any) *ValidationError {
	ve := NewValidationError()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ve
	}
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ve
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		value, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, reflect.New(f.Type).Interface()); err != nil {
			ve.Add(name, typeMessage(name, f.Type))
		}
	}
	return ve
}

func typeMessage(field string, t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	rule := "string"
	switch {
	case t == decimalType, t.Kind() >= reflect.Int && t.Kind() <= reflect.Float64:
		rule = "numeric"
	case t.Kind() == reflect.Slice:
		rule = "array"
	case t.Kind() == reflect.Bool:
		rule = "boolean"
	}
	if msg, ok := fieldMessages[field+"."+rule]; ok {
		return msg
	}
	label := strings.ReplaceAll(field, "_", " ")
	switch rule {
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", label)
	case "array":
		return fmt.Sprintf("The %s must be a list of valid values.", label)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", label)
	default:
		return fmt.Sprintf("The %s must be a string.", label)
	}
}

// validateProduct 结构体规则之外再校验金额与评分
func validateProduct(req *types.ProductRequest) *ValidationError {
	ve := validateStruct("", req)

	if req.Price == nil {
		ve.Add("price", fieldMessages["price.required"])
	} else if req.Price.IsNegative() {
		ve.Add("price", "The price must be at least 0.")
	}
	if req.OriginalPrice != nil && req.OriginalPrice.IsNegative() {
		ve.Add("original_price", "The original price must be at least 0.")
	}
	if req.Rating != nil && (req.Rating.IsNegative() || req.Rating.GreaterThan(maxRating)) {
		ve.Add("rating", "The rating must be between 0 and 5.")
	}
	if req.Status != "" && !models.ValidProductStatus(req.Status) {
		ve.Add("status", msgStatusInvalid)
	}
	return ve
}
