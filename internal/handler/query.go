package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
)

// queryParser разбирает параметры строки запроса, запоминая первую ошибку
type queryParser struct {
	values url.Values
	err    error
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}

func (p *queryParser) intValue(key string, def int) int {
	raw := p.values.Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return v
}

func (p *queryParser) int64Value(key string) *int64 {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(key, raw, err)
		return nil
	}
	return &v
}

func (p *queryParser) boolValue(key string) *bool {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return nil
	}
	return &v
}

func (p *queryParser) stringValue(key string) *string {
	if !p.values.Has(key) {
		return nil
	}
	v := p.values.Get(key)
	return &v
}

func (p *queryParser) dateValue(key string) *time.Time {
	raw := p.values.Get(key)
	if raw == "" {
		return nil
	}
	v, err := dto.ParseDate(raw)
	if err != nil {
		p.fail(key, raw, err)
		return nil
	}
	return &v
}

func (p *queryParser) page() dto.PageQuery {
	return dto.PageQuery{
		Skip:  p.intValue("skip", 0),
		Limit: p.intValue("limit", domain.DefaultLimit),
	}
}

func parseListCustomersQuery(values url.Values) (dto.ListCustomersQuery, error) {
	p := newQueryParser(values)
	query := dto.ListCustomersQuery{
		PageQuery: p.page(),
		Search:    p.stringValue("search"),
		Active:    p.boolValue("active"),
	}
	return query, p.err
}

func parseListDepartmentsQuery(values url.Values) (dto.ListDepartmentsQuery, error) {
	p := newQueryParser(values)
	query := dto.ListDepartmentsQuery{
		PageQuery:  p.page(),
		CustomerID: p.int64Value("customer_id"),
	}
	return query, p.err
}

func parseListProjectsQuery(values url.Values) (dto.ListProjectsQuery, error) {
	p := newQueryParser(values)
	query := dto.ListProjectsQuery{
		PageQuery:    p.page(),
		CustomerID:   p.int64Value("customer_id"),
		DepartmentID: p.int64Value("department_id"),
		Active:       p.boolValue("active"),
	}
	return query, p.err
}

func parseListTimeEntriesQuery(values url.Values) (dto.ListTimeEntriesQuery, error) {
	p := newQueryParser(values)
	query := dto.ListTimeEntriesQuery{
		PageQuery:  p.page(),
		ProjectID:  p.int64Value("project_id"),
		CustomerID: p.int64Value("customer_id"),
		Billable:   p.boolValue("billable"),
		From:       p.dateValue("from"),
		To:         p.dateValue("to"),
	}
	return query, p.err
}

func parseReportQuery(values url.Values) (dto.ReportQuery, error) {
	p := newQueryParser(values)
	query := dto.ReportQuery{
		From:     p.dateValue("from"),
		To:       p.dateValue("to"),
		Billable: p.boolValue("billable"),
	}
	return query, p.err
}

func toPage(q dto.PageQuery) domain.Page {
	return domain.Page{Skip: q.Skip, Limit: q.Limit}
}
