package services

import (
	"context"
	"fmt"
	"log"

	apperrors "counselling-module/errors"
	"counselling-module/models"
	"counselling-module/utils"
)

// FlowState is a step in the checkout flow.
type FlowState int

const (
	StateIdle FlowState = iota
	StatePlanSelected
	StateFormVisible
	StateSubmitting
	StateOrderCreated
	StateCheckoutOpen
	StateVerifying
	StateSettledSuccess
	StateSettledFailure
)

func (s FlowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlanSelected:
		return "plan-selected"
	case StateFormVisible:
		return "form-visible"
	case StateSubmitting:
		return "submitting"
	case StateOrderCreated:
		return "order-created"
	case StateCheckoutOpen:
		return "checkout-open"
	case StateVerifying:
		return "verifying"
	case StateSettledSuccess:
		return "settled(success)"
	case StateSettledFailure:
		return "settled(failure)"
	default:
		return "unknown"
	}
}

// ContactDetails are the buyer fields collected before checkout. They are
// retained across failures so the user never re-types them.
type ContactDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	PhoneNo    string `json:"phoneNo"`
	WhatsappNo string `json:"whatsappNo"`
}

// CheckoutSession is what the third-party widget needs to open its overlay.
// AmountPaise follows the widget's minor-unit convention.
type CheckoutSession struct {
	Key         string
	AmountPaise int
	Currency    string
	OrderID     string
	Prefill     ContactDetails
}

// OrderCreator creates a server-authoritative order for a payment.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order models.PaymentOrder) (*models.RazorpayOrder, error)
}

// PaymentVerifier settles a completed checkout. Only its explicit success
// result is authoritative.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, v models.PaymentVerification) (bool, error)
}

// CheckoutGateway abstracts the script-injected checkout widget.
type CheckoutGateway interface {
	Ready() bool
	Open(session CheckoutSession) error
}

// PaymentOrchestrator drives the checkout flow through its states:
//
//	idle -> plan-selected -> form-visible -> submitting -> order-created
//	     -> checkout-open -> verifying -> settled(success|failure)
//
// An order must exist before checkout can open, and checkout must complete
// before verification is attempted. A settled failure returns to the contact
// form for retry; the payment itself is never retried automatically.
type PaymentOrchestrator struct {
	orders      OrderCreator
	verifier    PaymentVerifier
	checkout    CheckoutGateway
	merchantKey string

	state       FlowState
	priceRupees int
	contact     ContactDetails
	order       *models.RazorpayOrder
}

func NewPaymentOrchestrator(orders OrderCreator, verifier PaymentVerifier, checkout CheckoutGateway, merchantKey string) *PaymentOrchestrator {
	return &PaymentOrchestrator{
		orders:      orders,
		verifier:    verifier,
		checkout:    checkout,
		merchantKey: merchantKey,
		state:       StateIdle,
	}
}

// State returns the current flow state.
func (o *PaymentOrchestrator) State() FlowState {
	return o.state
}

// Contact returns the buyer details entered so far.
func (o *PaymentOrchestrator) Contact() ContactDetails {
	return o.contact
}

// Order returns the created order, if any.
func (o *PaymentOrchestrator) Order() *models.RazorpayOrder {
	return o.order
}

// SelectPlan records the price the user picked. Display prices carry comma
// thousands-separators ("4,999") which are stripped here; a malformed price
// is kept as zero so package resolution fails closed later, before any
// network call.
func (o *PaymentOrchestrator) SelectPlan(displayPrice string) {
	price, err := utils.NormalizePrice(displayPrice)
	if err != nil {
		log.Printf("[FLOW] Unparseable price %q selected", displayPrice)
		price = 0
	}
	o.priceRupees = price
	o.order = nil
	o.state = StatePlanSelected
}

// OpenForm shows the contact-detail form for the selected plan.
func (o *PaymentOrchestrator) OpenForm() error {
	if o.state != StatePlanSelected {
		return apperrors.E(apperrors.Invalid, fmt.Sprintf("cannot open form from state %s", o.state))
	}
	o.state = StateFormVisible
	return nil
}

// SubmitContact takes the filled contact form and advances through order
// creation and checkout opening. Precondition failures (widget not ready,
// unrecognized price) abort before any network call and leave the form
// visible with the entered values intact.
func (o *PaymentOrchestrator) SubmitContact(ctx context.Context, contact ContactDetails) error {
	if o.state != StateFormVisible {
		return apperrors.E(apperrors.Invalid, fmt.Sprintf("cannot submit contact details from state %s", o.state))
	}
	o.contact = contact
	o.state = StateSubmitting

	if !o.checkout.Ready() {
		o.state = StateFormVisible
		return ErrCheckoutNotReady
	}

	plan := models.PlanByPrice(o.priceRupees)
	if plan == nil {
		o.state = StateFormVisible
		return ErrUnknownPackage
	}

	order, err := o.orders.CreateOrder(ctx, models.PaymentOrder{
		PackageType: plan.PackageType,
		Name:        contact.Name,
		Email:       contact.Email,
		PhoneNo:     contact.PhoneNo,
		WhatsappNo:  contact.WhatsappNo,
	})
	if err != nil {
		log.Printf("[FLOW] Order creation failed: %v", err)
		o.state = StateSettledFailure
		return err
	}
	o.order = order
	o.state = StateOrderCreated

	session := CheckoutSession{
		Key:         o.merchantKey,
		AmountPaise: utils.ToPaise(int(order.Amount)),
		Currency:    order.Currency,
		OrderID:     order.OrderID,
		Prefill:     contact,
	}
	if err := o.checkout.Open(session); err != nil {
		log.Printf("[FLOW] Checkout open failed: %v", err)
		o.state = StateSettledFailure
		return err
	}
	o.state = StateCheckoutOpen
	return nil
}

// HandleCheckoutCompletion relays the widget's completion payload to the
// verifier and settles the flow on its explicit answer. Returns true only on
// confirmed success.
func (o *PaymentOrchestrator) HandleCheckoutCompletion(ctx context.Context, v models.PaymentVerification) (bool, error) {
	if o.state != StateCheckoutOpen {
		return false, apperrors.E(apperrors.Invalid, fmt.Sprintf("no open checkout to complete in state %s", o.state))
	}
	o.state = StateVerifying

	ok, err := o.verifier.VerifyPayment(ctx, v)
	if err != nil {
		o.state = StateSettledFailure
		return false, err
	}
	if !ok {
		o.state = StateSettledFailure
		return false, nil
	}
	o.state = StateSettledSuccess
	return true, nil
}

// Retry re-opens the contact form after a settled failure. Contact details
// are kept; the payment is never re-run implicitly.
func (o *PaymentOrchestrator) Retry() error {
	if o.state != StateSettledFailure {
		return apperrors.E(apperrors.Invalid, fmt.Sprintf("nothing to retry in state %s", o.state))
	}
	o.order = nil
	o.state = StateFormVisible
	return nil
}

// Reset returns the flow to idle and clears everything, including the
// contact form. Used after a confirmed success closes the modal.
func (o *PaymentOrchestrator) Reset() {
	o.state = StateIdle
	o.priceRupees = 0
	o.contact = ContactDetails{}
	o.order = nil
}
