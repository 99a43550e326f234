// Package splitting derives and validates participant shares for split
// expenses. It is pure: no storage, no side effects. Callers run it before
// every persist so stored participant lists always satisfy the sum invariant.
package splitting

import (
	"fmt"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// All sentinel errors wrap apperrors.ErrValidation so callers can match the
// broad class with errors.Is and still report the specific violation.
var (
	ErrNonPositiveAmount = fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	ErrNoParticipants    = fmt.Errorf("%w: at least one participant is required", apperrors.ErrValidation)
	ErrInvalidSplitType  = fmt.Errorf("%w: unknown split type", apperrors.ErrValidation)
	ErrShareMismatch     = fmt.Errorf("%w: participant shares do not sum to the total amount", apperrors.ErrValidation)
	ErrPercentageSum     = fmt.Errorf("%w: percentages must sum to 100", apperrors.ErrValidation)
	ErrPercentageRange   = fmt.Errorf("%w: percentage must be between 0 and 100", apperrors.ErrValidation)
	ErrNegativePaid      = fmt.Errorf("%w: amount paid must not be negative", apperrors.ErrValidation)
	ErrSubCentAmount     = fmt.Errorf("%w: amount has more precision than the smallest currency unit", apperrors.ErrValidation)
	ErrEmptyParticipant  = fmt.Errorf("%w: participant id is required", apperrors.ErrValidation)
)

// ShareInput is one caller-supplied participant before derivation.
// ShareAmount is only read for custom splits, Percentage only for
// percentage splits.
type ShareInput struct {
	ParticipantID string
	AmountPaid    decimal.Decimal
	ShareAmount   decimal.Decimal
	Percentage    decimal.Decimal
}

// percentageTolerance is how far the percentage sum may stray from 100.
var percentageTolerance = decimal.RequireFromString("0.01")

// shareSumTolerance is one unit of the smallest currency denomination.
var shareSumTolerance = decimal.New(1, -2)

var oneHundred = decimal.NewFromInt(100)

// DeriveShares computes each participant's share of totalAmount according to
// splitType. Equal and percentage splits have shares derived server-side,
// with any rounding remainder handed out one cent at a time in input order so
// the result sums to totalAmount exactly. Custom shares are accepted as
// given once they pass the sum check.
func DeriveShares(totalAmount decimal.Decimal, splitType domain.SplitType, inputs []ShareInput) ([]domain.SplitParticipant, error) {
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositiveAmount
	}
	if !totalAmount.Round(2).Equal(totalAmount) {
		return nil, ErrSubCentAmount
	}
	if len(inputs) == 0 {
		return nil, ErrNoParticipants
	}
	for _, in := range inputs {
		if in.ParticipantID == "" {
			return nil, ErrEmptyParticipant
		}
		if in.AmountPaid.IsNegative() {
			return nil, fmt.Errorf("%w (participant %s)", ErrNegativePaid, in.ParticipantID)
		}
	}

	switch splitType {
	case domain.SplitEqual:
		return deriveEqual(totalAmount, inputs), nil
	case domain.SplitPercentage:
		return derivePercentage(totalAmount, inputs)
	case domain.SplitCustom:
		return validateCustom(totalAmount, inputs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSplitType, splitType)
	}
}

// deriveEqual divides the total in whole cents; the first (total mod n)
// participants each absorb one extra cent. {100, 3} -> [33.34, 33.33, 33.33].
func deriveEqual(totalAmount decimal.Decimal, inputs []ShareInput) []domain.SplitParticipant {
	n := int64(len(inputs))
	totalCents := totalAmount.Shift(2).IntPart()
	perHead := totalCents / n
	remainder := totalCents % n

	participants := make([]domain.SplitParticipant, len(inputs))
	for i, in := range inputs {
		cents := perHead
		if int64(i) < remainder {
			cents++
		}
		participants[i] = domain.SplitParticipant{
			ParticipantID: in.ParticipantID,
			AmountPaid:    in.AmountPaid,
			ShareAmount:   decimal.New(cents, -2),
		}
	}
	return participants
}

// derivePercentage rounds each percentage share to the cent, then corrects
// the rounding drift with the same one-cent distribution rule.
func derivePercentage(totalAmount decimal.Decimal, inputs []ShareInput) ([]domain.SplitParticipant, error) {
	pctSum := decimal.Zero
	for _, in := range inputs {
		if in.Percentage.IsNegative() || in.Percentage.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("%w (participant %s)", ErrPercentageRange, in.ParticipantID)
		}
		pctSum = pctSum.Add(in.Percentage)
	}
	if pctSum.Sub(oneHundred).Abs().GreaterThan(percentageTolerance) {
		return nil, fmt.Errorf("%w, got %s", ErrPercentageSum, pctSum)
	}

	participants := make([]domain.SplitParticipant, len(inputs))
	sharesCents := decimal.Zero
	for i, in := range inputs {
		share := totalAmount.Mul(in.Percentage).Div(oneHundred).Round(2)
		participants[i] = domain.SplitParticipant{
			ParticipantID: in.ParticipantID,
			AmountPaid:    in.AmountPaid,
			ShareAmount:   share,
		}
		sharesCents = sharesCents.Add(share)
	}

	distributeRemainder(participants, totalAmount.Sub(sharesCents))
	return participants, nil
}

// validateCustom accepts caller-supplied shares untouched once the sum lands
// within one cent of the total. Out-of-tolerance sums are never corrected.
func validateCustom(totalAmount decimal.Decimal, inputs []ShareInput) ([]domain.SplitParticipant, error) {
	sum := decimal.Zero
	for _, in := range inputs {
		if in.ShareAmount.IsNegative() {
			return nil, fmt.Errorf("%w: share amount must not be negative (participant %s)", apperrors.ErrValidation, in.ParticipantID)
		}
		if !in.ShareAmount.Round(2).Equal(in.ShareAmount) {
			return nil, fmt.Errorf("%w (participant %s)", ErrSubCentAmount, in.ParticipantID)
		}
		sum = sum.Add(in.ShareAmount)
	}
	if sum.Sub(totalAmount).Abs().GreaterThan(shareSumTolerance) {
		return nil, fmt.Errorf("%w: total %s, shares sum %s", ErrShareMismatch, totalAmount, sum)
	}

	participants := make([]domain.SplitParticipant, len(inputs))
	for i, in := range inputs {
		participants[i] = domain.SplitParticipant{
			ParticipantID: in.ParticipantID,
			AmountPaid:    in.AmountPaid,
			ShareAmount:   in.ShareAmount,
		}
	}
	return participants, nil
}

// distributeRemainder hands out diff one cent at a time in participant order
// until exhausted. Negative drift is taken back the same way, skipping any
// participant whose share is already zero so no share goes negative. The loop
// terminates: negative drift means the shares sum above the positive total,
// so some share always has a cent left to give.
func distributeRemainder(participants []domain.SplitParticipant, diff decimal.Decimal) {
	cent := shareSumTolerance
	diffCents := diff.Shift(2).IntPart()
	for i := 0; diffCents != 0; i = (i + 1) % len(participants) {
		if diffCents > 0 {
			participants[i].ShareAmount = participants[i].ShareAmount.Add(cent)
			diffCents--
		} else if participants[i].ShareAmount.GreaterThanOrEqual(cent) {
			participants[i].ShareAmount = participants[i].ShareAmount.Sub(cent)
			diffCents++
		}
	}
}

// ValidateStored re-checks the sum invariant on an already-derived participant
// list before it reaches storage. A failure at this point means derivation
// and persistence disagree, so it reports an integrity violation rather than
// bad caller input.
func ValidateStored(totalAmount decimal.Decimal, participants []domain.SplitParticipant) error {
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.ShareAmount)
	}
	if sum.Sub(totalAmount).Abs().GreaterThan(shareSumTolerance) {
		return fmt.Errorf("%w: split total %s, derived shares sum %s", apperrors.ErrIntegrityViolation, totalAmount, sum)
	}
	return nil
}
