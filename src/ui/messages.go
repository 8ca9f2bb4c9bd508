package ui

import "gitlab.com/open-soft/go-crypto-dashboard/src/model"

type chartLoadedMsg struct {
	seq  uint64
	data model.ChartData
	err  error
}

type snapshotLoadedMsg struct {
	ticks []model.PriceTick
}

type conversionMsg struct {
	seq  uint64
	text string
	err  error
}

type replyMsg struct {
	seq  uint64
	text string
	err  error
}
