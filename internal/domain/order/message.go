package order

import (
	"fmt"
	"net/url"
	"strings"

	"nabrasa-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

// MessageBuilder renders the chat text and the deep link that carries it.
type MessageBuilder struct {
	StoreName   string
	ChatBaseURL string
	Recipient   string
	Calculator  cart.PriceCalculator
}

func NewMessageBuilder(storeName, chatBaseURL, recipient string, calc cart.PriceCalculator) *MessageBuilder {
	return &MessageBuilder{
		StoreName:   storeName,
		ChatBaseURL: strings.TrimRight(chatBaseURL, "/"),
		Recipient:   recipient,
		Calculator:  calc,
	}
}

func (b *MessageBuilder) Text(o *Order) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Pedido %s*\n\n", b.StoreName)

	for _, l := range o.Lines {
		b.writeLine(&sb, l)
	}

	fmt.Fprintf(&sb, "\n*Subtotal: R$ %s*\n", money(o.Totals.Subtotal))
	if o.IsDelivery() {
		fmt.Fprintf(&sb, "*Taxa de entrega: R$ %s*\n", money(o.Totals.DeliveryFee))
	}
	if o.CouponCode != "" {
		fmt.Fprintf(&sb, "*Desconto (%s): -R$ %s*\n", o.CouponCode, money(o.Totals.Discount))
	}
	fmt.Fprintf(&sb, "*Total: R$ %s*\n\n", money(o.Totals.Total))

	if o.Details.Note != "" {
		fmt.Fprintf(&sb, "*Observações:* %s\n\n", o.Details.Note)
	}

	deliveryLabel := "Retirar no local"
	if o.IsDelivery() {
		deliveryLabel = "Entrega"
	}
	fmt.Fprintf(&sb, "*Forma de entrega:* %s\n", deliveryLabel)
	if o.IsDelivery() {
		fmt.Fprintf(&sb, "*Endereço:* %s\n", o.Details.Address)
	}
	if o.Details.CustomerName != "" {
		fmt.Fprintf(&sb, "*Nome:* %s\n", o.Details.CustomerName)
	}
	fmt.Fprintf(&sb, "*Forma de pagamento:* %s\n", o.Details.PaymentMethod)

	return sb.String()
}

func (b *MessageBuilder) writeLine(sb *strings.Builder, l cart.Line) {
	fmt.Fprintf(sb, "*%dx %s*", l.Quantity(), l.Name())
	if s := l.Size(); s != nil {
		fmt.Fprintf(sb, " - %s", s.Name)
	}
	if v := l.Variant(); v != nil {
		fmt.Fprintf(sb, " - %s", v.Name)
	}
	if l.IsTrioUpsell() {
		fmt.Fprintf(sb, " + TRIO (Batata pequena + %s lata)", l.TrioDrinkName())
	}
	fmt.Fprintf(sb, " - R$ %s\n", money(b.Calculator.LinePrice(l)))

	if l.IsBurger() && !l.IsSweet() {
		sauces := l.Sauces()
		if len(sauces) > 0 {
			fmt.Fprintf(sb, "   Molhos: %s", strings.Join(sauces, ", "))
			if extra, fee := b.Calculator.SauceOverage(l); extra > 0 {
				fmt.Fprintf(sb, " (%d extra - R$ %s)", extra, money(fee))
			}
			sb.WriteString("\n")
		} else {
			sb.WriteString("   Sem molho\n")
		}
	}

	if n := l.Note(); n != "" {
		fmt.Fprintf(sb, "   Obs: %s\n", n)
	}
	sb.WriteString("\n")
}

// DeepLink embeds the percent-encoded text in the chat URL.
func (b *MessageBuilder) DeepLink(text string) string {
	return fmt.Sprintf("%s/%s?text=%s", b.ChatBaseURL, b.Recipient, encodeComponent(text))
}

// encodeComponent escapes spaces as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
