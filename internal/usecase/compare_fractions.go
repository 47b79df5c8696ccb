package usecase

import "github.com/thatkingore/mathematical-modelling/internal/domain"

type CompareFractions struct{}

func NewCompareFractions() *CompareFractions {
	return &CompareFractions{}
}

// Execute parses both operands and orders them. The texts in the result are simplified.
func (uc *CompareFractions) Execute(a, b string) (domain.FractionComparison, error) {
	left, err := domain.ParseFraction(a)
	if err != nil {
		return domain.FractionComparison{}, err
	}
	right, err := domain.ParseFraction(b)
	if err != nil {
		return domain.FractionComparison{}, err
	}

	order := left.Compare(right)
	return domain.FractionComparison{
		Left:       left,
		Right:      right,
		LeftText:   left.Simplify().String(),
		RightText:  right.Simplify().String(),
		LeftValue:  left.Float64(),
		RightValue: right.Float64(),
		Order:      order,
		Relation:   domain.Relation(order),
	}, nil
}

// Simplify parses s and reduces it to lowest terms.
func (uc *CompareFractions) Simplify(s string) (domain.Fraction, error) {
	f, err := domain.ParseFraction(s)
	if err != nil {
		return domain.Fraction{}, err
	}
	return f.Simplify(), nil
}
