package form

import (
	"context"
	"errors"
	"time"

	"resume-builder/internal/resumeclient"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

const (
	MessageGenerated       = "Resume Generated Successfully!"
	MessageGenerateFailed  = "Error Generating Resume!"
	DefaultSuccessDuration = 3 * time.Second
	DefaultSuccessPosition = "top-center"
)

// State is everything the resume form view renders from.
type State struct {
	Description     string
	Data            FormData
	Loading         bool
	ShowPromptInput bool
	ShowFormUI      bool
	ShowResumeUI    bool
}

// InitialState is the idle state: prompt visible, nothing loading.
func InitialState(data FormData) State {
	return State{Data: data, ShowPromptInput: true}
}

// NotifyOptions controls how a success notification is displayed.
type NotifyOptions struct {
	Duration time.Duration
	Position string
}

// Generator produces a resume from a free-text summary.
type Generator interface {
	GenerateResume(ctx context.Context, summary string) (*resumeclient.Response, error)
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Success(message string, opts NotifyOptions)
	Error(message string)
}

// View is the rendering side. Render is called whenever state changes and
// Reset re-seeds any form-input state derived from Data.
type View interface {
	Render(State)
	Reset(FormData)
}

// Controller drives one generate cycle from the prompt to the form.
type Controller struct {
	gen    Generator
	notify Notifier
	view   View
}

func NewController(gen Generator, notify Notifier, view View) *Controller {
	return &Controller{gen: gen, notify: notify, view: view}
}

// Generate runs a generation for st.Description and returns the final state.
// Failures are reported through the Notifier and never returned.
func (c *Controller) Generate(ctx context.Context, st State) State {
	st.Loading = true
	c.view.Render(st)

	resp, err := c.gen.GenerateResume(ctx, st.Description)
	if err != nil {
		c.notify.Error(failureMessage(err))
	} else {
		st = c.applySuccess(st, resp)
	}

	st.Loading = false
	st.Description = ""
	c.view.Render(st)
	return st
}

func (c *Controller) applySuccess(st State, resp *resumeclient.Response) State {
	body := ""
	if resp != nil {
		body = resp.Data
	}
	if body == "" {
		telemetry.Warn("form.generate.empty_body", map[string]any{"summary_fp": util.Fingerprint(st.Description)})
	} else {
		merged, err := Merge(st.Data, body)
		if err != nil {
			telemetry.Error("form.merge.failed", map[string]any{"error": err.Error()})
			c.notify.Error(MessageGenerateFailed)
			return st
		}
		st.Data = merged
		c.view.Reset(merged)
	}

	c.notify.Success(MessageGenerated, NotifyOptions{
		Duration: DefaultSuccessDuration,
		Position: DefaultSuccessPosition,
	})
	st.ShowFormUI = true
	st.ShowPromptInput = false
	st.ShowResumeUI = false
	return st
}

func failureMessage(err error) string {
	var reqErr *resumeclient.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return MessageGenerateFailed
}
