package ports

// Mailer es el colaborador externo de correo. El envío es fire-and-forget desde
// los casos de uso: un fallo de entrega se registra pero nunca revierte el
// estado ya persistido, y no hay reintento automático.
type Mailer interface {
	Send(to, subject, body string) error
}
