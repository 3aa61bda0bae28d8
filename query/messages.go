package query

import "strings"

const (
	TypeListScenarios    = "webhookprobe.query.scenarios.list"
	TypeDescribeScenario = "webhookprobe.query.scenarios.describe"
)

type ListScenariosMessage struct{}

func (ListScenariosMessage) Type() string { return TypeListScenarios }

func (ListScenariosMessage) Validate() error { return nil }

type DescribeScenarioMessage struct {
	Name string
}

func (DescribeScenarioMessage) Type() string { return TypeDescribeScenario }

func (m DescribeScenarioMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return queryValidationError("name", "scenario name is required")
	}
	return nil
}
