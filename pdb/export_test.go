package pdb

var OldOrMmcif = oldOrMmcif

const (
	Old_fmt   = old_fmt
	Mmcif_fmt = mmcif_fmt
)
