package common

import "github.com/nspcc-dev/neo-go/pkg/interop/convert"

var (
	mintPrefix   = []byte{0x01}
	burnPrefix   = []byte{0x02}
	rewardPrefix = []byte{0x10}
)

func MintTransferDetails(txDetails []byte) []byte {
	return append(mintPrefix, txDetails...)
}

func BurnTransferDetails(txDetails []byte) []byte {
	return append(burnPrefix, txDetails...)
}

// RewardTransferDetails marks a token transfer as a one-time report reward
// payout. Report ID is attached so that the payout can be traced back from
// the TransferX notification.
func RewardTransferDetails(reportID int) []byte {
	return append(rewardPrefix, convert.ToBytes(reportID)...)
}
