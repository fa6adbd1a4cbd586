package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/quitute/quitute/app/models"
)

// statusMessages are the WhatsApp templates sent to the customer when the
// supplier moves an order. The link itself is handed to an external channel;
// nothing here is state.
var statusMessages = map[models.OrderStatus]string{
	models.StatusEmPreparo:           "Olá %s! Seu pedido #%d está em preparo.",
	models.StatusAguardandoCliente:   "Olá %s! Seu pedido #%d está pronto e aguardando você.",
	models.StatusFinalizado:          "Olá %s! Seu pedido #%d foi finalizado. Obrigado pela preferência!",
	models.StatusRecusado:            "Olá %s. Infelizmente seu pedido #%d foi recusado.",
	models.StatusCanceladoFornecedor: "Olá %s. Seu pedido #%d foi cancelado pelo fornecedor.",
}

// WhatsAppLink builds a wa.me link for contacting the order's customer with
// a message matching the order's current status. Returns "" when the order
// has no contact number or the status has no template (NOVO needs none).
func WhatsAppLink(order models.Order) string {
	digits := onlyDigits(order.CustomerContact)
	if digits == "" {
		return ""
	}

	template, ok := statusMessages[order.Status]
	if !ok {
		return ""
	}

	text := fmt.Sprintf(template, order.CustomerName, order.ID)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
