package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		To:       to,
	}
}

// SendImportSummary avisa o gestor que um lote de leads entrou na base.
func (s *EmailSender) SendImportSummary(count int64, importedAt string) error {
	data := ImportSummaryData{
		Count:      count,
		ImportedAt: importedAt,
	}

	tmplPath := filepath.Join("templates", "import_summary.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@leadtrack.app")
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Importação concluída: %d novos leads 📈", count))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
