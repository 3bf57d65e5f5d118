package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

// Field keys for the channel connect form.
const (
	FieldChannelLink     = "channel_link"
	FieldChannelMinCPM   = "min_cpm"
	FieldChannelLanguage = "language"
	FieldChannelCategory = "category"
)

// ChannelStage tracks the connect dialog. A successful registration moves
// the dialog into the verify stage, where the creator adds the bot to the
// channel and completes ownership verification.
type ChannelStage int

const (
	ChannelClosed ChannelStage = iota
	ChannelForm
	ChannelVerify
)

// Channels drives the creator's channel management: connecting a new
// channel, verifying ownership, editing the CPM floor and targeting, and
// disconnecting.
type Channels struct {
	gw     port.Gateway
	tabs   *Tabs
	notify port.Notifier
	logger *slog.Logger

	mu               sync.Mutex
	stage            ChannelStage
	draft            domain.ChannelDraft
	errs             domain.FieldErrors
	verificationLink string
}

// NewChannels wires the channel management flow.
func NewChannels(gw port.Gateway, tabs *Tabs, notify port.Notifier, logger *slog.Logger) *Channels {
	return &Channels{gw: gw, tabs: tabs, notify: notify, logger: logger}
}

// Open shows an empty connect form.
func (c *Channels) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stage = ChannelForm
	c.draft = domain.NewChannelDraft()
	c.errs = domain.FieldErrors{}
	c.verificationLink = ""
}

// Close abandons the dialog in any stage.
func (c *Channels) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stage = ChannelClosed
}

// Stage returns the dialog stage.
func (c *Channels) Stage() ChannelStage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Draft returns a copy of the form state.
func (c *Channels) Draft() domain.ChannelDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.draft
	d.Languages = copySet(c.draft.Languages)
	d.Categories = copySet(c.draft.Categories)
	return d
}

// Errors returns the current inline validation errors.
func (c *Channels) Errors() domain.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := domain.FieldErrors{}
	out.Merge(c.errs)
	return out
}

// VerificationLink returns the link handed out after registration. The
// creator opens it to add the verification bot to the channel.
func (c *Channels) VerificationLink() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verificationLink
}

// SetLink records the channel link input.
func (c *Channels) SetLink(v string) {
	c.mu.Lock()
	c.draft.Link = strings.TrimSpace(v)
	c.mu.Unlock()
}

// SetMinCPM records the CPM floor input.
func (c *Channels) SetMinCPM(v string) {
	c.mu.Lock()
	c.draft.MinCPM = strings.TrimSpace(v)
	c.mu.Unlock()
}

// ToggleLanguage flips one language checkbox. Selections beyond the cap
// are ignored.
func (c *Channels) ToggleLanguage(v string) {
	c.mu.Lock()
	toggleSelection(c.draft.Languages, v)
	c.mu.Unlock()
}

// ToggleCategory flips one category checkbox. Selections beyond the cap
// are ignored.
func (c *Channels) ToggleCategory(v string) {
	c.mu.Lock()
	toggleSelection(c.draft.Categories, v)
	c.mu.Unlock()
}

func toggleSelection(set map[string]bool, v string) {
	if set[v] {
		delete(set, v)
		return
	}
	if len(set) >= domain.MaxChannelSelections {
		return
	}
	set[v] = true
}

func copySet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedValues(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Connect validates the form and registers the channel. On success the
// dialog moves to the verify stage with the verification link set.
func (c *Channels) Connect(ctx context.Context) {
	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()

	errs := domain.FieldErrors{}
	if !domain.ChannelLinkRe.MatchString(draft.Link) {
		errs.Add(FieldChannelLink, "Enter a valid Telegram channel link (e.g., https://t.me/yourchannel)")
	}
	minCPM, err := strconv.ParseFloat(draft.MinCPM, 64)
	if err != nil || minCPM <= 0 {
		errs.Add(FieldChannelMinCPM, "Minimum CPM must be a positive number")
	}
	if len(draft.Languages) == 0 {
		errs.Add(FieldChannelLanguage, "Please select at least one language.")
	}
	if len(draft.Categories) == 0 {
		errs.Add(FieldChannelCategory, "Please select at least one category.")
	}
	if !errs.Empty() {
		c.mu.Lock()
		c.errs = errs
		c.mu.Unlock()
		return
	}

	payload := port.ChannelPayload{
		Link:       draft.Link,
		MinCPM:     minCPM,
		Languages:  sortedValues(draft.Languages),
		Categories: sortedValues(draft.Categories),
	}
	result, err := c.gw.ConnectChannel(ctx, payload)
	if err != nil {
		c.logger.Error("channel connect failed", "link", draft.Link, "err", err)
		c.routeConnectError(err)
		return
	}

	c.mu.Lock()
	c.errs = domain.FieldErrors{}
	c.verificationLink = result.VerificationLink
	c.stage = ChannelVerify
	c.mu.Unlock()
	c.notify.Success("Channel submitted! Please continue to verification.")
}

// routeConnectError maps a failed registration onto the form: per-field
// errors go inline, a detail message goes to a toast.
func (c *Channels) routeConnectError(err error) {
	apiErr, ok := port.ParseAPIError(err)
	if ok && len(apiErr.Fields) > 0 {
		errs := domain.FieldErrors{}
		for field, msgs := range apiErr.Fields {
			if len(msgs) > 0 {
				errs.Add(field, msgs[0])
			}
		}
		c.mu.Lock()
		c.errs = errs
		c.mu.Unlock()
		return
	}
	if ok && apiErr.Detail != "" {
		c.notify.Error(apiErr.Detail)
		return
	}
	c.notify.Error("Something went wrong.")
}

// Verify completes ownership verification once the bot has been added to
// the channel. On success the dialog closes and the channels tab reloads.
func (c *Channels) Verify(ctx context.Context) {
	c.mu.Lock()
	link := c.verificationLink
	c.mu.Unlock()

	msg, err := c.gw.VerifyChannel(ctx, link)
	if err != nil {
		c.logger.Error("channel verification failed", "err", err)
		text := err.Error()
		if text == "" {
			text = "Verification failed, please try again."
		}
		c.notify.Error(text)
		return
	}
	if msg == "" {
		msg = "Channel verified successfully! You can now serve ads and earn."
	}
	c.notify.Success(msg)
	c.Close()
	c.tabs.RefreshCurrentTab(ctx)
}

// Update saves a channel's CPM floor and language targeting. Validation
// failures are reported as one combined toast.
func (c *Channels) Update(ctx context.Context, id, minCPMStr string, languages []string) {
	var problems []string
	if len(languages) == 0 {
		problems = append(problems, "Select at least one language")
	}
	minCPM, err := strconv.ParseFloat(strings.TrimSpace(minCPMStr), 64)
	if err != nil || minCPM <= 0 {
		problems = append(problems, "Minimum CPM must be > 0")
	}
	if len(problems) > 0 {
		c.notify.Error("Please fix these issues: " + strings.Join(problems, "; "))
		return
	}

	payload := port.ChannelPayload{MinCPM: minCPM, Languages: languages}
	if err := c.gw.UpdateChannel(ctx, id, payload); err != nil {
		c.logger.Error("channel update failed", "channel", id, "err", err)
		text := err.Error()
		if text == "" {
			text = "Failed to update channel"
		}
		c.notify.Error("Error: " + text)
		return
	}
	c.notify.Success("Channel updated successfully!")
	c.tabs.RefreshCurrentTab(ctx)
}

// Delete disconnects a channel.
func (c *Channels) Delete(ctx context.Context, id string) {
	if err := c.gw.DeleteChannel(ctx, id); err != nil {
		c.logger.Error("channel delete failed", "channel", id, "err", err)
		c.notify.Error("Failed to remove channel: " + err.Error())
		return
	}
	c.notify.Success("Channel removed successfully.")
	c.tabs.RefreshCurrentTab(ctx)
}
