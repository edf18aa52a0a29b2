package commands

import (
	"errors"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/internal/domain/configuration"
	"nabrasa-storefront/internal/domain/coupon"
	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/pkg/errs"
)

const (
	msgProductNotFound  = "Produto não encontrado"
	msgUnavailable      = "Produto ou opção indisponível"
	msgLineNotFound     = "Item não encontrado no carrinho"
	msgInvalidQuantity  = "Quantidade inválida"
	msgInvalidOption    = "Opção inválida para este produto"
	msgInvalidDelivery  = "Forma de entrega inválida"
	msgEmptyCouponCode  = "Digite um código de cupom"
	msgEmptyCart        = "Adicione itens ao carrinho"
	msgAddressRequired  = "Informe o endereço de entrega"
	msgPaymentRequired  = "Selecione uma forma de pagamento"
	msgPaymentInvalid   = "Forma de pagamento inválida"
	msgStoreUnavailable = "Não foi possível atualizar o carrinho. Tente novamente."
)

// classify marks a domain error with the sentinel the transport maps to a status
// and attaches the customer-facing text. Unknown errors become store failures.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var limit *configuration.SauceLimitError
	if errors.As(err, &limit) {
		return errs.WithUserMessage(errs.Mark(err, errs.ErrCapacityExceeded), limit.UserMessage())
	}

	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return errs.WithUserMessage(errs.Mark(err, errs.ErrProductNotFound), msgProductNotFound)
	case errors.Is(err, cart.ErrLineNotFound):
		return errs.WithUserMessage(errs.Mark(err, errs.ErrLineNotFound), msgLineNotFound)
	case errors.Is(err, catalog.ErrProductUnavailable), errors.Is(err, cart.ErrVariantUnavailable):
		return errs.WithUserMessage(errs.Mark(err, errs.ErrUnavailable), msgUnavailable)
	case errors.Is(err, order.ErrEmptyCart):
		return errs.WithUserMessage(errs.Mark(err, errs.ErrEmptyCart), msgEmptyCart)
	}

	if msg, ok := validationMessage(err); ok {
		return errs.WithUserMessage(errs.Mark(err, errs.ErrDomainValidation), msg)
	}
	return errs.WithUserMessage(errs.Mark(err, errs.ErrStoreOperationFailed), msgStoreUnavailable)
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return msgInvalidQuantity, true
	case errors.Is(err, cart.ErrTrioDrinkRequired):
		return configuration.RequireTrioDrink.UserMessage(), true
	case errors.Is(err, cart.ErrPotatoRequired), errors.Is(err, configuration.ErrPotatoNotConfirmed):
		return configuration.RequirePotatoOption.UserMessage(), true
	case errors.Is(err, cart.ErrInvalidDeliveryType):
		return msgInvalidDelivery, true
	case errors.Is(err, coupon.ErrEmptyCouponCode):
		return msgEmptyCouponCode, true
	case errors.Is(err, order.ErrAddressRequired):
		return msgAddressRequired, true
	case errors.Is(err, order.ErrPaymentMethodRequired):
		return msgPaymentRequired, true
	case errors.Is(err, order.ErrInvalidPaymentMethod):
		return msgPaymentInvalid, true
	case errors.Is(err, configuration.ErrSaucesNotAccepted),
		errors.Is(err, configuration.ErrUnknownSauce),
		errors.Is(err, configuration.ErrNoSizeGroup),
		errors.Is(err, configuration.ErrUnknownSize),
		errors.Is(err, configuration.ErrUnknownVariant),
		errors.Is(err, configuration.ErrUnknownPotatoOption),
		errors.Is(err, configuration.ErrUnknownSweetOption),
		errors.Is(err, configuration.ErrTrioNotAccepted),
		errors.Is(err, configuration.ErrTrioOff),
		errors.Is(err, configuration.ErrUnknownDrink):
		return msgInvalidOption, true
	}
	return "", false
}
