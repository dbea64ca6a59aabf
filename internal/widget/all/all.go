// Package all registers every widget type.
package all

import (
	_ "github.com/bornholm/scaffold/internal/widget/faucet"
	_ "github.com/bornholm/scaffold/internal/widget/theme"
	_ "github.com/bornholm/scaffold/internal/widget/wallet"
)
