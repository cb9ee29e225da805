package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Answers replays predefined answers instead of asking a user.
// It implements Selector and Inputer, and records every request,
// which makes it the usual prompt of tests and scripted runs.
type Answers struct {
	selections []int
	inputs     []string

	// Requests holds all requests received, in order.
	Requests []Request

	// Selects and Inputs count the calls made to each method.
	Selects int
	Inputs  int
}

// NewAnswers returns scripted answers for selections, in call order.
func NewAnswers(selections ...int) *Answers {
	return &Answers{selections: selections}
}

// WithInputs appends answers to text input prompts.
func (a *Answers) WithInputs(inputs ...string) *Answers {
	a.inputs = append(a.inputs, inputs...)
	return a
}

// ParseAnswers parses a comma-separated list of answers, such as "1,alice":
// integers answer selections and everything else answers inputs.
func ParseAnswers(list string) *Answers {
	answers := &Answers{}

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		if index, err := strconv.Atoi(field); err == nil {
			answers.selections = append(answers.selections, index)
		} else {
			answers.inputs = append(answers.inputs, field)
		}
	}

	return answers
}

// Select implements Selector.
func (a *Answers) Select(_ context.Context, req Request) (int, error) {
	a.Selects++
	a.Requests = append(a.Requests, req)

	if len(a.selections) == 0 {
		return 0, Failed(fmt.Errorf("%w for %q", ErrNoAnswer, req.Prompt))
	}

	index := a.selections[0]
	a.selections = a.selections[1:]

	return index, nil
}

// Input implements Inputer.
func (a *Answers) Input(_ context.Context, req Request) (string, error) {
	a.Inputs++
	a.Requests = append(a.Requests, req)

	if len(a.inputs) == 0 {
		return "", Failed(fmt.Errorf("%w for %q", ErrNoAnswer, req.Prompt))
	}

	input := a.inputs[0]
	a.inputs = a.inputs[1:]

	if input == "" {
		return req.DefaultText, nil
	}

	return input, nil
}
