package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenString returns a base58 id, short enough for request ids.
func GenString() string {
	return node.Generate().Base58()
}
