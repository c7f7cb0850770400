package budget

import "fmt"

// stepLog accumulates calculation steps in the order they are computed.
type stepLog struct {
	steps []CalculationStep
}

func (l *stepLog) add(label string, value float64, explanation string, args ...interface{}) {
	l.steps = append(l.steps, CalculationStep{
		Label:       label,
		Value:       value,
		Explanation: fmt.Sprintf(explanation, args...),
	})
}

// done returns a copy so later additions never alias a returned result.
func (l *stepLog) done() []CalculationStep {
	out := make([]CalculationStep, len(l.steps))
	copy(out, l.steps)
	return out
}
