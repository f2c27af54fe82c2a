package model

type TimezoneQueryStatus int

const (
	TimezoneQueryEmpty TimezoneQueryStatus = iota
	TimezoneQueryForbidden
	TimezoneQueryFound
)

// Tagged union over Forbidden(message), Empty, Found(timezone).
type TimezoneQueryResult struct {
	Status   TimezoneQueryStatus
	Message  string // only for TimezoneQueryForbidden
	Timezone string // only for TimezoneQueryFound
}

func NewForbiddenResult(message string) TimezoneQueryResult {
	return TimezoneQueryResult{Status: TimezoneQueryForbidden, Message: message}
}

func NewEmptyResult() TimezoneQueryResult {
	return TimezoneQueryResult{Status: TimezoneQueryEmpty}
}

func NewFoundResult(timezone string) TimezoneQueryResult {
	return TimezoneQueryResult{Status: TimezoneQueryFound, Timezone: timezone}
}
