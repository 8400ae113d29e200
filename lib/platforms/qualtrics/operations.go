package qualtrics

import (
	"context"
	"fmt"
	"strings"

	"qualtrics-client/lib/platforms/qualtrics/wire"
)

// The typed operation methods below are thin wrappers over Call. Payloads
// are passed through as decoded data; this client does not model the
// survey domain.

func (c *Client) GetUserInfo(ctx context.Context) (any, error) {
	return c.Call(ctx, "getUserInfo", nil)
}

// GetSurveys returns the account's survey list, unwrapped from the
// envelope result.
func (c *Client) GetSurveys(ctx context.Context) (any, error) {
	payload, err := c.Call(ctx, "getSurveys", nil)
	if err != nil {
		return nil, err
	}
	if result, ok := payload.(map[string]any); ok {
		if surveys, ok := result["Surveys"]; ok {
			return surveys, nil
		}
	}
	return payload, nil
}

// GetSurvey returns the raw survey definition. This operation answers in
// bare XML without the usual envelope.
func (c *Client) GetSurvey(ctx context.Context, surveyID string) (any, error) {
	return c.Call(ctx, "getSurvey", Params{"SurveyID": surveyID})
}

func (c *Client) GetSurveyName(ctx context.Context, surveyID string) (any, error) {
	return c.Call(ctx, "getSurveyName", Params{"SurveyID": surveyID})
}

func (c *Client) GetActiveSurveys(ctx context.Context) (any, error) {
	return c.Call(ctx, "getActiveSurveys", nil)
}

func (c *Client) GetSurveyLanguages(ctx context.Context, surveyID string) (any, error) {
	return c.Call(ctx, "getSurveyLanguages", Params{"SurveyID": surveyID})
}

// GetResponseCountsBySurvey counts responses between StartDate and
// EndDate, which default to the last seven days when not given in extra.
func (c *Client) GetResponseCountsBySurvey(ctx context.Context, surveyID string, extra Params) (any, error) {
	return c.Call(ctx, "getResponseCountsBySurvey", withParams(extra, Params{
		"SurveyID": surveyID,
	}))
}

// GetLegacyResponseData exports recorded responses. The CSV variant (the
// default) is reshaped into one record per response keyed by the resolved
// header row; the JSON and XML variants return the vendor payload as is.
func (c *Client) GetLegacyResponseData(ctx context.Context, surveyID string, extra Params) (any, error) {
	params := withParams(extra, Params{"SurveyID": surveyID})

	format, ok := params["Format"]
	if !ok {
		format = descriptors["getLegacyResponseData"].Defaults["Format"]
	}

	payload, err := c.Call(ctx, "getLegacyResponseData", params)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(format, "CSV") {
		return payload, nil
	}

	table, ok := payload.([][]string)
	if !ok {
		return nil, fmt.Errorf("getLegacyResponseData: expected a spreadsheet payload, got %T", payload)
	}
	return wire.ReshapeLegacy(table), nil
}

func (c *Client) GetPanels(ctx context.Context) (any, error) {
	return c.Call(ctx, "getPanels", nil)
}

func (c *Client) GetPanel(ctx context.Context, panelID string) (any, error) {
	return c.Call(ctx, "getPanel", Params{"PanelID": panelID})
}

func (c *Client) GetPanelMemberCount(ctx context.Context, panelID string) (any, error) {
	return c.Call(ctx, "getPanelMemberCount", Params{"PanelID": panelID})
}

func (c *Client) CreatePanel(ctx context.Context, name string) (any, error) {
	return c.Call(ctx, "createPanel", Params{"Name": name})
}

func (c *Client) DeletePanel(ctx context.Context, panelID string) (any, error) {
	return c.Call(ctx, "deletePanel", Params{"PanelID": panelID})
}

func (c *Client) AddRecipient(ctx context.Context, panelID, email string, extra Params) (any, error) {
	return c.Call(ctx, "addRecipient", withParams(extra, Params{
		"PanelID": panelID,
		"Email":   email,
	}))
}

func (c *Client) GetRecipient(ctx context.Context, recipientID string) (any, error) {
	return c.Call(ctx, "getRecipient", Params{"RecipientID": recipientID})
}

func (c *Client) UpdateRecipient(ctx context.Context, recipientID string, extra Params) (any, error) {
	return c.Call(ctx, "updateRecipient", withParams(extra, Params{
		"RecipientID": recipientID,
	}))
}

func (c *Client) RemoveRecipient(ctx context.Context, panelID, recipientID string) (any, error) {
	return c.Call(ctx, "removeRecipient", Params{
		"PanelID":     panelID,
		"RecipientID": recipientID,
	})
}

type SendSurveyOptions struct {
	SurveyID    string
	PanelID     string
	RecipientID string
	FromEmail   string
	FromName    string
	Subject     string
	// SendDate defaults to a few minutes in the past, i.e. send now.
	SendDate string
}

func (c *Client) SendSurveyToIndividual(ctx context.Context, opts SendSurveyOptions) (any, error) {
	params := Params{
		"SurveyID":    opts.SurveyID,
		"PanelID":     opts.PanelID,
		"RecipientID": opts.RecipientID,
		"FromEmail":   opts.FromEmail,
		"FromName":    opts.FromName,
		"Subject":     opts.Subject,
	}
	if opts.SendDate != "" {
		params["SendDate"] = opts.SendDate
	}
	return c.Call(ctx, "sendSurveyToIndividual", params)
}

// withParams overlays `base` on top of `extra` into a fresh Params, so the
// fixed arguments of a typed method cannot be clobbered through extra.
func withParams(extra Params, base Params) Params {
	out := make(Params, len(extra)+len(base))
	for key, value := range extra {
		out[key] = value
	}
	for key, value := range base {
		out[key] = value
	}
	return out
}
