package layers

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// LSTM proxies the library's long short-term memory layer.
type LSTM struct {
	Base

	units               int
	activation          string
	recurrentActivation string
	useBias             bool
	dropout             float64
	recurrentDropout    float64
	returnSequences     bool
	returnState         bool
	goBackwards         bool
	stateful            bool
	inputShape          []int
}

// LSTMOption configures an LSTM proxy.
type LSTMOption func(*LSTM)

// WithLSTMActivation sets the output activation by its library name.
func WithLSTMActivation(activation string) LSTMOption {
	return func(l *LSTM) {
		l.activation = activation
	}
}

// WithLSTMRecurrentActivation sets the recurrent step activation.
func WithLSTMRecurrentActivation(activation string) LSTMOption {
	return func(l *LSTM) {
		l.recurrentActivation = activation
	}
}

// WithLSTMUseBias toggles the bias vector.
func WithLSTMUseBias(useBias bool) LSTMOption {
	return func(l *LSTM) {
		l.useBias = useBias
	}
}

// WithLSTMDropout sets the fraction of input units to drop.
func WithLSTMDropout(dropout float64) LSTMOption {
	return func(l *LSTM) {
		l.dropout = dropout
	}
}

// WithLSTMRecurrentDropout sets the fraction of recurrent units to drop.
func WithLSTMRecurrentDropout(dropout float64) LSTMOption {
	return func(l *LSTM) {
		l.recurrentDropout = dropout
	}
}

// WithLSTMReturnSequences returns the full output sequence rather than the
// last output.
func WithLSTMReturnSequences(returnSequences bool) LSTMOption {
	return func(l *LSTM) {
		l.returnSequences = returnSequences
	}
}

// WithLSTMReturnState additionally returns the final cell states.
func WithLSTMReturnState(returnState bool) LSTMOption {
	return func(l *LSTM) {
		l.returnState = returnState
	}
}

// WithLSTMGoBackwards processes the input sequence in reverse.
func WithLSTMGoBackwards(goBackwards bool) LSTMOption {
	return func(l *LSTM) {
		l.goBackwards = goBackwards
	}
}

// WithLSTMStateful carries batch-final states over to the next batch.
func WithLSTMStateful(stateful bool) LSTMOption {
	return func(l *LSTM) {
		l.stateful = stateful
	}
}

// WithLSTMInputShape sets the input shape for a first layer.
func WithLSTMInputShape(shape []int) LSTMOption {
	return func(l *LSTM) {
		l.inputShape = shape
	}
}

// NewLSTM constructs the library-side LSTM layer with the given number of
// units.
func NewLSTM(units int, options ...LSTMOption) (*LSTM, error) {
	l := &LSTM{
		units:               units,
		activation:          "tanh",
		recurrentActivation: "hard_sigmoid",
		useBias:             true,
	}
	for _, opt := range options {
		opt(l)
	}

	bag := params.NewBag().
		Set("units", l.units).
		Set("activation", l.activation).
		Set("recurrent_activation", l.recurrentActivation).
		Set("use_bias", l.useBias).
		Set("dropout", l.dropout).
		Set("recurrent_dropout", l.recurrentDropout).
		Set("return_sequences", l.returnSequences).
		Set("return_state", l.returnState).
		Set("go_backwards", l.goBackwards).
		Set("stateful", l.stateful)
	setInputShape(bag, l.inputShape)

	if err := l.build("LSTM", bag); err != nil {
		return nil, err
	}
	return l, nil
}
