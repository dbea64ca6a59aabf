package config

import (
	"fmt"

	"github.com/bornholm/scaffold/internal/widget"
	"github.com/goccy/go-yaml"
)

type Widget struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options,omitempty"`

	// When is an optional rule restricting the pages displaying the widget
	When InterpolatedString `yaml:"when,omitempty"`
}

// NewDefaultWidgetsConfig returns the header widgets in display order.
func NewDefaultWidgetsConfig() []Widget {
	return []Widget{
		{
			Type: "theme",
			Options: &InterpolatedMap{
				Data: map[string]any{
					"default": "${SCAFFOLD_THEME_DEFAULT:-light}",
					"secret":  "${SCAFFOLD_THEME_SECRET:-}",
				},
			},
		},
		{
			Type: "wallet",
			Options: &InterpolatedMap{
				Data: map[string]any{
					"networkName": "${SCAFFOLD_WALLET_NETWORK_NAME:-Hardhat}",
					"chainId":     "${SCAFFOLD_WALLET_CHAIN_ID:-31337}",
					"rpcUrl":      "${SCAFFOLD_WALLET_RPC_URL:-http://127.0.0.1:8545}",
				},
			},
		},
		{
			Type: "faucet",
			Options: &InterpolatedMap{
				Data: map[string]any{
					"amount":    "${SCAFFOLD_FAUCET_AMOUNT:-1}",
					"unit":      "ETH",
					"rate":      "${SCAFFOLD_FAUCET_RATE:-0.2}",
					"burst":     "${SCAFFOLD_FAUCET_BURST:-3}",
					"storePath": "${SCAFFOLD_FAUCET_STORE_PATH:-}",
				},
			},
		},
	}
}

func NewWidgetsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"": []*yaml.Comment{yaml.HeadComment(
			" Widgets displayed on the right side of the header, in order",
			fmt.Sprintf(" Available: %v", widget.Registered()),
			` Each widget accepts an optional 'when' rule, i.e. when: 'path != "/debug"'`,
		)},
	}
}
