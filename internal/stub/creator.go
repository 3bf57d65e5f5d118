package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sonic-miniapp/internal/core/domain"
	"sonic-miniapp/internal/core/port"
)

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Channel, len(s.channels))
	for i, ch := range s.channels {
		out[i] = *ch
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleConnectChannel(w http.ResponseWriter, r *http.Request) {
	var p port.ChannelPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	errs := map[string][]string{}
	if !domain.ChannelLinkRe.MatchString(p.Link) {
		errs["channel_link"] = []string{"Enter a valid Telegram channel link."}
	}
	if p.MinCPM <= 0 {
		errs["min_cpm"] = []string{"Ensure this value is greater than 0."}
	}
	if len(p.Languages) == 0 {
		errs["language"] = []string{"This list may not be empty."}
	}
	if len(p.Categories) == 0 {
		errs["category"] = []string{"This list may not be empty."}
	}
	if len(errs) > 0 {
		s.errorJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	s.mu.Lock()
	for _, ch := range s.channels {
		if ch.Link == p.Link {
			s.mu.Unlock()
			s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "This channel is already connected."})
			return
		}
	}
	ch := &domain.Channel{
		ID:            uuid.NewString(),
		Title:         p.Link[len("https://t.me/"):],
		Link:          p.Link,
		Status:        "pending",
		StatusDisplay: "Pending verification",
		MinCPM:        p.MinCPM,
		Languages:     p.Languages,
		Categories:    p.Categories,
	}
	s.channels = append(s.channels, ch)
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, port.ChannelConnectResult{
		VerificationLink: fmt.Sprintf("https://t.me/sonic_verify_bot?start=%s", ch.ID),
	})
}

// handleVerifyChannel marks the most recently connected pending channel as
// verified. The real backend resolves the channel from the activation code;
// the stub only tracks one pending verification at a time.
func (s *Server) handleVerifyChannel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActivationCode string `json:"activation_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ActivationCode == "" {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "Verification failed, please try again."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.channels) - 1; i >= 0; i-- {
		if s.channels[i].Status == "pending" {
			s.channels[i].Status = "verified"
			s.channels[i].StatusDisplay = "Verified"
			s.writeJSON(w, http.StatusOK, map[string]string{
				"message": "Channel verified successfully! You can now serve ads and earn.",
			})
			return
		}
	}
	s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "No channel awaiting verification."})
}

func (s *Server) handleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	var p port.ChannelPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.channels {
		if ch.ID == chi.URLParam(r, "id") {
			if p.MinCPM > 0 {
				ch.MinCPM = p.MinCPM
			}
			if len(p.Languages) > 0 {
				ch.Languages = p.Languages
			}
			if len(p.Categories) > 0 {
				ch.Categories = p.Categories
			}
			s.writeJSON(w, http.StatusOK, *ch)
			return
		}
	}
	s.errorJSON(w, http.StatusNotFound, map[string]string{"message": "Channel not found."})
}

func (s *Server) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ch := range s.channels {
		if ch.ID == id {
			s.channels = append(s.channels[:i], s.channels[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.errorJSON(w, http.StatusNotFound, map[string]string{"error": "Channel not found."})
}

func (s *Server) handleListPlacements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.AdPlacement, len(s.placements))
	for i, p := range s.placements {
		out[i] = *p
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePlacementDecision(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, p := range s.placements {
			if p.ID == chi.URLParam(r, "id") {
				if p.Status != "pending" {
					s.errorJSON(w, http.StatusBadRequest, map[string]string{
						"message": "Ad placement was already " + p.Status + ".",
					})
					return
				}
				p.Status = target
				s.writeJSON(w, http.StatusOK, map[string]any{
					"message":     "Ad placement " + target + ".",
					"adplacement": *p,
				})
				return
			}
		}
		s.errorJSON(w, http.StatusNotFound, map[string]string{"message": "Ad placement not found."})
	}
}

func (s *Server) handleListMethods(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.PaymentMethod, len(s.methods))
	copy(out, s.methods)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMethodChoices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.choices)
}

func (s *Server) handleAddMethod(w http.ResponseWriter, r *http.Request) {
	var p port.PaymentMethodPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var choice *domain.PaymentMethodChoice
	for i := range s.choices {
		if s.choices[i].ID == p.ChoiceID {
			choice = &s.choices[i]
			break
		}
	}
	if choice == nil {
		s.errorJSON(w, http.StatusBadRequest, map[string][]string{
			"payment_method_choice": {"Invalid payment method choice."},
		})
		return
	}
	if choice.Category == "bank" && !domain.AccountNumberRe.MatchString(p.AccountNumber) {
		s.errorJSON(w, http.StatusBadRequest, map[string][]string{
			"account_number": {"Enter a valid account number."},
		})
		return
	}
	if choice.Category == "wallet" && !domain.PayoutPhoneRe.MatchString(p.PhoneNumber) {
		s.errorJSON(w, http.StatusBadRequest, map[string][]string{
			"phone_number": {"Enter a valid phone number."},
		})
		return
	}

	if p.IsDefault {
		for i := range s.methods {
			s.methods[i].IsDefault = false
		}
	}
	s.methods = append(s.methods, domain.PaymentMethod{
		ID:            uuid.NewString(),
		Category:      choice.Category,
		ShortName:     choice.ShortName,
		AccountNumber: p.AccountNumber,
		PhoneNumber:   p.PhoneNumber,
		Status:        "pending",
		IsDefault:     p.IsDefault,
	})
	s.writeJSON(w, http.StatusCreated, map[string]string{"message": "Payment method added successfully!"})
}

func (s *Server) handlePatchMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsDefault bool `json:"is_default"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.methods {
		if s.methods[i].ID == id {
			if req.IsDefault {
				for j := range s.methods {
					s.methods[j].IsDefault = false
				}
				s.methods[i].IsDefault = true
			}
			s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
			return
		}
	}
	s.errorJSON(w, http.StatusNotFound, map[string]string{"error": "Payment method not found."})
}

func (s *Server) handleDeleteMethod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.methods {
		if s.methods[i].ID == id {
			s.methods = append(s.methods[:i], s.methods[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.errorJSON(w, http.StatusNotFound, map[string]string{"error": "Payment method not found."})
}

func (s *Server) handleWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount   float64 `json:"amount"`
		MethodID string  `json:"user_payment_method_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Amount < domain.MinWithdrawal {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "Minimum withdrawal amount is ETB 100"})
		return
	}
	if req.Amount > s.balance.Available {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "Insufficient balance."})
		return
	}
	found := false
	for _, m := range s.methods {
		if m.ID == req.MethodID && m.Verified() {
			found = true
			break
		}
	}
	if !found {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"error": "No verified payment method found."})
		return
	}

	s.balance.Available -= req.Amount
	s.balance.Transactions = append([]domain.Transaction{{
		ID: uuid.NewString(), Type: "withdrawal", Amount: req.Amount,
		Reference: "WDR-" + uuid.NewString()[:8], Status: "pending",
		Date: time.Now().Format("2006-01-02"),
	}}, s.balance.Transactions...)
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Withdrawal request submitted successfully!"})
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := 0
	for _, it := range s.notifications {
		if !it.IsRead {
			n++
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, map[string]int{"unread_count": n})
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
			return
		}
	}
	s.errorJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := s.profile
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

// handlePatchProfile merges the changed fields; explicit nulls clear the
// optional fields.
func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var changes map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		s.errorJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, val := range changes {
		text := ""
		if val != nil {
			text = *val
		}
		switch key {
		case "first_name":
			s.profile.FirstName = text
		case "last_name":
			s.profile.LastName = text
		case "email":
			s.profile.Email = text
		case "address":
			s.profile.Address = text
		}
	}
	s.writeJSON(w, http.StatusOK, s.profile)
}
