package main

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/formkit-go/formkit"
	"github.com/formkit-go/formkit/rules"
	"github.com/formkit-go/formkit/schema"
	"github.com/formkit-go/formkit/translate"
)

//go:embed profile_rules.yaml
var profileRules []byte

type handlers struct {
	logger     *slog.Logger
	translator *translate.Translator
	profileSet map[string]*schema.Rules
}

func newHandlers(logger *slog.Logger, translator *translate.Translator) (*handlers, error) {
	set, err := schema.ParseSet(profileRules)
	if err != nil {
		return nil, err
	}
	return &handlers{
		logger:     logger,
		translator: translator,
		profileSet: set,
	}, nil
}

type signupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup validates with direct rule validators, one session per request.
func (h *handlers) signup(w http.ResponseWriter, r *http.Request) {
	localize := h.translator.Func(r.Header.Get("Accept-Language"))
	session := formkit.New()

	var form signupForm
	fields := []struct {
		fn    formkit.ValidateFunc[string]
		set   func(string)
		value string
	}{
		{rules.Localized(localize, rules.Required(), rules.MinLen(2)), func(v string) { form.Name = v }, r.FormValue("name")},
		{rules.Localized(localize, rules.Required(), rules.Email()), func(v string) { form.Email = v }, r.FormValue("email")},
		{rules.Localized(localize, rules.Required(), rules.MinLen(8)), func(v string) { form.Password = v }, r.FormValue("password")},
	}
	for _, fd := range fields {
		field, err := formkit.Attach(session, fd.fn, fd.set)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		field.SetValue(fd.value)
	}

	h.respond(w, r, session, form)
}

// profile validates through the YAML rule documents via the schema adapter.
func (h *handlers) profile(w http.ResponseWriter, r *http.Request) {
	session, err := formkit.NewWithAdapter(schema.Adapter())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	form := map[string]string{}
	for _, name := range []string{"username", "plan"} {
		field, err := formkit.AttachSchema[string](session, h.profileSet[name], func(v string) { form[name] = v })
		if err != nil {
			h.fail(w, r, err)
			return
		}
		field.SetValue(r.FormValue(name))
	}

	h.respond(w, r, session, form)
}

func (h *handlers) respond(w http.ResponseWriter, r *http.Request, session *formkit.Session, form any) {
	errs, err := session.Validate(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if len(errs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": errs})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "form": form})
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
