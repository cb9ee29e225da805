package values

// Validated runs a validation on every word before setting its wrapped value.
type Validated struct {
	Value
	Validate func(val string) error
}

// Set validates val, and sets it on success.
func (v *Validated) Set(val string) error {
	if v.Validate != nil {
		if err := v.Validate(val); err != nil {
			return err
		}
	}

	return v.Value.Set(val)
}

// IsBoolFlag forwards to the wrapped value.
func (v *Validated) IsBoolFlag() bool {
	return IsBool(v.Value)
}
