package qualtrics

import (
	"time"
)

// Params are the key/value query parameters of one API call.
type Params map[string]string

// Descriptor is the compiled-in parameter spec of one operation. The
// descriptor table is process-wide static data and is never mutated;
// Build copies it into a fresh Params per call.
type Descriptor struct {
	Name     string
	Defaults Params
	// dynamic defaults are evaluated at build time, not process start,
	// so two calls seconds apart may get different values
	Dynamic  map[string]func(now time.Time) string
	Required []string
}

func (d Descriptor) requires(field string) bool {
	for _, name := range d.Required {
		if name == field {
			return true
		}
	}
	return false
}

// Build merges caller parameters over the operation defaults and enforces
// the required fields. Caller values always win, including explicit empty
// overrides of non-required defaults. A required field that resolves to an
// absent or empty value fails with MissingParameterError.
func (d Descriptor) Build(caller Params, now time.Time) (Params, error) {
	merged := make(Params, len(d.Defaults)+len(d.Dynamic)+len(caller))
	for key, value := range d.Defaults {
		merged[key] = value
	}
	for key, eval := range d.Dynamic {
		merged[key] = eval(now)
	}
	for key, value := range caller {
		merged[key] = value
	}

	for _, field := range d.Required {
		if merged[field] == "" {
			return nil, &MissingParameterError{Operation: d.Name, Field: field}
		}
	}
	return merged, nil
}

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

func defaultStartDate(now time.Time) string {
	return now.AddDate(0, 0, -7).Format(dateLayout)
}

func defaultEndDate(now time.Time) string {
	return now.Format(dateLayout)
}

// the vendor rejects send dates in the future of its own clock, so the
// default is backdated a little to absorb clock skew
func defaultSendDate(now time.Time) string {
	return now.Add(-10 * time.Minute).Format(datetimeLayout)
}

var descriptors = map[string]Descriptor{
	"getUserInfo": {
		Name:     "getUserInfo",
		Defaults: Params{"Format": "JSON"},
	},
	"getSurveys": {
		Name:     "getSurveys",
		Defaults: Params{"Format": "JSON"},
	},
	// getSurvey returns the raw survey definition without the usual
	// envelope, and only speaks XML
	"getSurvey": {
		Name:     "getSurvey",
		Required: []string{"SurveyID"},
	},
	"getSurveyName": {
		Name:     "getSurveyName",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"SurveyID"},
	},
	"getActiveSurveys": {
		Name:     "getActiveSurveys",
		Defaults: Params{"Format": "JSON"},
	},
	"getSurveyLanguages": {
		Name:     "getSurveyLanguages",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"SurveyID"},
	},
	"getResponseCountsBySurvey": {
		Name:     "getResponseCountsBySurvey",
		Defaults: Params{"Format": "JSON"},
		Dynamic: map[string]func(time.Time) string{
			"StartDate": defaultStartDate,
			"EndDate":   defaultEndDate,
		},
		Required: []string{"SurveyID", "StartDate", "EndDate"},
	},
	"getLegacyResponseData": {
		Name: "getLegacyResponseData",
		Defaults: Params{
			"Format":     "CSV",
			"ExportTags": "1",
		},
		Required: []string{"SurveyID"},
	},
	"getPanels": {
		Name:     "getPanels",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID"},
	},
	"getPanel": {
		Name:     "getPanel",
		Defaults: Params{"Format": "CSV"},
		Required: []string{"LibraryID", "PanelID"},
	},
	"getPanelMemberCount": {
		Name:     "getPanelMemberCount",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "PanelID"},
	},
	"createPanel": {
		Name:     "createPanel",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "Name"},
	},
	"deletePanel": {
		Name:     "deletePanel",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "PanelID"},
	},
	"addRecipient": {
		Name:     "addRecipient",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "PanelID", "Email"},
	},
	"getRecipient": {
		Name:     "getRecipient",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "RecipientID"},
	},
	"updateRecipient": {
		Name:     "updateRecipient",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "RecipientID"},
	},
	"removeRecipient": {
		Name:     "removeRecipient",
		Defaults: Params{"Format": "JSON"},
		Required: []string{"LibraryID", "PanelID", "RecipientID"},
	},
	"sendSurveyToIndividual": {
		Name:     "sendSurveyToIndividual",
		Defaults: Params{"Format": "JSON"},
		Dynamic: map[string]func(time.Time) string{
			"SendDate": defaultSendDate,
		},
		Required: []string{
			"SurveyID", "PanelID", "RecipientID",
			"FromEmail", "FromName", "Subject", "SendDate",
		},
	},
}
