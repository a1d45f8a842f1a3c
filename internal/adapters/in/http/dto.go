package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"cargofresh/internal/core/application/session"
	"cargofresh/internal/core/application/usecases/assistant"
	"cargofresh/internal/core/application/usecases/queries"
	"cargofresh/internal/core/domain/model/quote"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrWeightNotStringOrNumber is returned when a weight is neither a JSON
// string nor a JSON number.
var ErrWeightNotStringOrNumber = errors.New("weight must be a string or a number")

// WeightInput is a weight as the visitor typed it. A JSON number is kept in
// its literal spelling so the domain parser sees the same digits.
type WeightInput string

func (w *WeightInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = WeightInput(s)
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return err
	}
	n, ok := v.(json.Number)
	if !ok {
		return ErrWeightNotStringOrNumber
	}
	*w = WeightInput(n.String())
	return nil
}

// FormPatch carries the form fields to change. Absent fields are left alone.
type FormPatch struct {
	Origin      *string      `json:"origin,omitempty"`
	Destination *string      `json:"destination,omitempty"`
	CargoType   *string      `json:"cargoType,omitempty"`
	Weight      *WeightInput `json:"weight,omitempty"`
	LastMile    *bool        `json:"lastMile,omitempty"`
}

// events lists one edit per present field, in form order.
func (p FormPatch) events() []session.Event {
	var events []session.Event
	if p.Origin != nil {
		events = append(events, session.EditOrigin{Value: *p.Origin})
	}
	if p.Destination != nil {
		events = append(events, session.EditDestination{Value: *p.Destination})
	}
	if p.CargoType != nil {
		events = append(events, session.EditCargoType{Value: *p.CargoType})
	}
	if p.Weight != nil {
		events = append(events, session.EditWeight{Value: string(*p.Weight)})
	}
	if p.LastMile != nil {
		events = append(events, session.EditLastMile{Value: *p.LastMile})
	}
	return events
}

type EstimateRequest struct {
	CargoType string      `json:"cargoType"`
	Weight    WeightInput `json:"weight"`
	LastMile  bool        `json:"lastMile"`
}

type LoginRequest struct {
	Role string `json:"role"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Outcome string `json:"outcome"`
	Reply   string `json:"reply"`
}

type PackagingRequest struct {
	Product string `json:"product"`
}

type PackagingAdvice struct {
	Temperature string `json:"temperature"`
	Packaging   string `json:"packaging"`
	Tips        string `json:"tips"`
}

type PackagingResponse struct {
	Outcome string           `json:"outcome"`
	Advice  *PackagingAdvice `json:"advice,omitempty"`
}

func newPackagingResponse(advice assistant.Advice) PackagingResponse {
	response := PackagingResponse{Outcome: advice.Outcome.String()}
	if advice.Advice != nil {
		response.Advice = &PackagingAdvice{
			Temperature: advice.Advice.Temperature,
			Packaging:   advice.Advice.Packaging,
			Tips:        advice.Advice.Tips,
		}
	}
	return response
}

type Estimate struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

func newEstimate(e quote.Estimate) Estimate {
	return Estimate{Min: e.Min, Max: e.Max, Currency: quote.Currency}
}

type Form struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CargoType   string `json:"cargoType"`
	Weight      string `json:"weight"`
	LastMile    bool   `json:"lastMile"`
}

type PendingQuote struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	CargoType   string  `json:"cargoType"`
	WeightKg    float64 `json:"weightKg"`
	LastMile    bool    `json:"lastMile"`
	Price       int     `json:"price"`
	Currency    string  `json:"currency"`
}

type Session struct {
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

type Order struct {
	ID          string  `json:"id"`
	Client      string  `json:"client"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	CargoType   string  `json:"cargoType"`
	WeightKg    float64 `json:"weightKg"`
	Price       int     `json:"price"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"statusLabel"`
	Date        string  `json:"date"`
}

type Summary struct {
	Active               int `json:"active"`
	PendingAuthorization int `json:"pendingAuthorization"`
}

// State is what the shell renders for a visitor.
type State struct {
	View         string        `json:"view"`
	Session      *Session      `json:"session,omitempty"`
	Form         Form          `json:"form"`
	Estimate     *Estimate     `json:"estimate,omitempty"`
	PendingQuote *PendingQuote `json:"pendingQuote,omitempty"`
	Orders       []Order       `json:"orders,omitempty"`
	Summary      *Summary      `json:"summary,omitempty"`
}

func newState(s session.State) State {
	response := State{
		View: s.View.String(),
		Form: Form{
			Origin:      s.Form.Origin,
			Destination: s.Form.Destination,
			CargoType:   s.Form.CargoType,
			Weight:      s.Form.Weight,
			LastMile:    s.Form.LastMile,
		},
	}

	if s.Session.Authenticated {
		response.Session = &Session{
			Role:        s.Session.Role.String(),
			DisplayName: s.Session.DisplayName,
		}
	}

	if s.Estimate != nil {
		estimate := newEstimate(*s.Estimate)
		response.Estimate = &estimate
	}

	if s.PendingQuote != nil {
		request := s.PendingQuote.Request()
		response.PendingQuote = &PendingQuote{
			Origin:      request.Origin().String(),
			Destination: request.Destination().String(),
			CargoType:   request.CargoType().String(),
			WeightKg:    request.Weight().Kg(),
			LastMile:    request.LastMile(),
			Price:       s.PendingQuote.Price(),
			Currency:    quote.Currency,
		}
	}

	return response
}

func newOrders(views []queries.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, Order{
			ID:          v.ID,
			Client:      v.Client,
			Origin:      v.Origin,
			Destination: v.Destination,
			CargoType:   v.CargoType,
			WeightKg:    v.WeightKg,
			Price:       v.Price,
			Status:      v.Status,
			StatusLabel: v.StatusLabel,
			Date:        v.Date,
		})
	}
	return orders
}
