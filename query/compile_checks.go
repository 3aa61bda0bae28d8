package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-webhook-probe/core"
)

var (
	_ gocmd.Querier[ListScenariosMessage, []core.ScenarioInfo]  = (*ListScenariosQuery)(nil)
	_ gocmd.Querier[DescribeScenarioMessage, core.ScenarioInfo] = (*DescribeScenarioQuery)(nil)
)
