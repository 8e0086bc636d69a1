package entity

import (
	"github.com/bwmarrin/snowflake"
)

const (
	ModuleName = "blackjack"

	BlackjackPayoutNumerator   = 3
	BlackjackPayoutDenominator = 2
)

var SnowlakeNode, _ = snowflake.NewNode(1)

// SetSnowflakeNode swaps the round id generator, e.g. for a configured node id.
func SetSnowflakeNode(node int64) error {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return err
	}
	SnowlakeNode = n
	return nil
}

func NewRoundID() string {
	return SnowlakeNode.Generate().String()
}
