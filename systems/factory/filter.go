package factory

import (
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/filter"
)

func newAxisFilter() *filter.OneEuro {
	return filter.NewOneEuro(cfg.Filter.MinCutoff, cfg.Filter.Beta, cfg.Filter.DCutoff)
}
