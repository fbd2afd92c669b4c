package mail

type ImportSummaryData struct {
	Count      int64
	ImportedAt string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}
