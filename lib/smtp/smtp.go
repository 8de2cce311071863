package smtp

import (
	"bytes"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEmail(to, subject, body string) error
}

func Connect(user, password, host, port, from string, tlsEnabled bool) {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

// SendEmail composes a MIME message and pushes it through the configured
// relay. With no relay configured the mail is skipped, not failed.
func (i impl) SendEmail(to, subject, body string) error {
	logger := log.WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("mail skipped, smtp relay is not configured")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", i.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		logger.WithError(err).Error("mail compose failed")
		return err
	}

	auth := sasl.NewPlainClient("", i.user, i.password)
	addr := i.host + ":" + i.port
	var err error
	if i.tlsEnabled {
		err = smtp.SendMailTLS(addr, auth, i.from, []string{to}, &buf)
	} else {
		err = smtp.SendMail(addr, auth, i.from, []string{to}, &buf)
	}
	if err != nil {
		logger.WithError(err).Error("mail send failed")
		return err
	}
	logger.Info("mail sent")
	return nil
}
