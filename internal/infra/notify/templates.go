package notify

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/pkg/errs"
)

var ErrUnknownKind = errs.New("unknown notification kind")

//go:embed templates/*.html
var templateFS embed.FS

type layout struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

var layoutSources = map[notification.Kind]struct{ subject, text string }{
	notification.KindReconnectNeeded: {
		subject: "Google Calendar connection expired",
		text:    "Hello {{.BusinessName}},\n\nYour Google Calendar connection has expired. Reconnect here: {{.ReconnectURL}}\n",
	},
	notification.KindNearQuota: {
		subject: "You are close to your monthly appointment limit",
		text:    "Hello {{.BusinessName}},\n\nYou have {{.Count}} appointments this month out of {{.Limit}} allowed by your plan.\n",
	},
	notification.KindBookingConfirmation: {
		subject: "Appointment confirmed at {{.BusinessName}}",
		text:    "Hello {{.ClientName}},\n\nYour appointment at {{.BusinessName}} is confirmed for {{.Date}} {{.Time}}.\n{{if .CancelURL}}Cancel: {{.CancelURL}}\n{{end}}",
	},
	notification.KindOwnerNewBooking: {
		subject: "New appointment: {{.ClientName}} on {{.Date}} {{.Time}}",
		text:    "New appointment\nClient: {{.ClientName}}\nEmail: {{.ClientEmail}}\n{{if .ClientPhone}}Phone: {{.ClientPhone}}\n{{end}}Date: {{.Date}}\nTime: {{.Time}}\n",
	},
	notification.KindOwnerCancellation: {
		subject: "Appointment cancelled by {{.ClientName}}",
		text:    "The client {{.ClientName}} cancelled their appointment on {{.Date}} {{.Time}} at {{.BusinessName}}.\n",
	},
}

func loadLayouts() (map[notification.Kind]layout, error) {
	out := make(map[notification.Kind]layout, len(layoutSources))
	for kind, src := range layoutSources {
		name := kind.String()
		subject, err := texttemplate.New(name + ".subject").Parse(src.subject)
		if err != nil {
			return nil, errs.Wrap(err, "parse subject "+name)
		}
		text, err := texttemplate.New(name + ".text").Parse(src.text)
		if err != nil {
			return nil, errs.Wrap(err, "parse text "+name)
		}
		html, err := htmltemplate.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, errs.Wrap(err, "parse html "+name)
		}
		out[kind] = layout{subject: subject, text: text, html: html}
	}
	return out, nil
}

func (l layout) render(data notification.Data) (Email, error) {
	var subject, text, html bytes.Buffer
	if err := l.subject.Execute(&subject, data); err != nil {
		return Email{}, err
	}
	if err := l.text.Execute(&text, data); err != nil {
		return Email{}, err
	}
	if err := l.html.Execute(&html, data); err != nil {
		return Email{}, err
	}
	return Email{
		Subject: strings.TrimSpace(subject.String()),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
