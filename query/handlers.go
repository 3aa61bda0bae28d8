package query

import (
	"context"

	"github.com/goliatone/go-webhook-probe/core"
)

type ScenarioReader interface {
	ListScenarios(ctx context.Context) ([]core.ScenarioInfo, error)
	DescribeScenario(ctx context.Context, name string) (core.ScenarioInfo, error)
}

type ListScenariosQuery struct {
	reader ScenarioReader
}

func NewListScenariosQuery(reader ScenarioReader) *ListScenariosQuery {
	return &ListScenariosQuery{reader: reader}
}

func (q *ListScenariosQuery) Query(ctx context.Context, _ ListScenariosMessage) ([]core.ScenarioInfo, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: scenario reader is required")
	}
	return q.reader.ListScenarios(ctx)
}

type DescribeScenarioQuery struct {
	reader ScenarioReader
}

func NewDescribeScenarioQuery(reader ScenarioReader) *DescribeScenarioQuery {
	return &DescribeScenarioQuery{reader: reader}
}

func (q *DescribeScenarioQuery) Query(ctx context.Context, msg DescribeScenarioMessage) (core.ScenarioInfo, error) {
	if q == nil || q.reader == nil {
		return core.ScenarioInfo{}, queryDependencyError("query: scenario reader is required")
	}
	if err := msg.Validate(); err != nil {
		return core.ScenarioInfo{}, err
	}
	return q.reader.DescribeScenario(ctx, msg.Name)
}
