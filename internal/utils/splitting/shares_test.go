package splitting

import (
	"fmt"
	"testing"

	"github.com/afnan006/LogUp/internal/apperrors"
	"github.com/afnan006/LogUp/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func equalInputs(ids ...string) []ShareInput {
	inputs := make([]ShareInput, len(ids))
	for i, id := range ids {
		inputs[i] = ShareInput{ParticipantID: id}
	}
	return inputs
}

func shareSum(participants []domain.SplitParticipant) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.ShareAmount)
	}
	return sum
}

func TestDeriveSharesEqualTwoWay(t *testing.T) {
	participants, err := DeriveShares(dec("100"), domain.SplitEqual, equalInputs("userA", "userB"))
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.True(t, participants[0].ShareAmount.Equal(dec("50")), "share A should be 50, got %s", participants[0].ShareAmount)
	assert.True(t, participants[1].ShareAmount.Equal(dec("50")), "share B should be 50, got %s", participants[1].ShareAmount)
}

func TestDeriveSharesEqualRemainderToFirst(t *testing.T) {
	participants, err := DeriveShares(dec("100"), domain.SplitEqual, equalInputs("a", "b", "c"))
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.True(t, participants[0].ShareAmount.Equal(dec("33.34")), "first participant takes the remainder cent, got %s", participants[0].ShareAmount)
	assert.True(t, participants[1].ShareAmount.Equal(dec("33.33")))
	assert.True(t, participants[2].ShareAmount.Equal(dec("33.33")))
}

func TestDeriveSharesEqualSumExactForAnyCount(t *testing.T) {
	totals := []string{"0.01", "0.07", "1", "19.99", "100", "12345.67"}
	for _, total := range totals {
		for n := 1; n <= 11; n++ {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("p%d", i)
			}
			participants, err := DeriveShares(dec(total), domain.SplitEqual, equalInputs(ids...))
			require.NoError(t, err, "total=%s n=%d", total, n)
			assert.True(t, shareSum(participants).Equal(dec(total)), "total=%s n=%d sum=%s", total, n, shareSum(participants))
		}
	}
}

func TestDeriveSharesPercentage(t *testing.T) {
	inputs := []ShareInput{
		{ParticipantID: "a", Percentage: dec("50")},
		{ParticipantID: "b", Percentage: dec("30")},
		{ParticipantID: "c", Percentage: dec("20")},
	}
	participants, err := DeriveShares(dec("200"), domain.SplitPercentage, inputs)
	require.NoError(t, err)
	assert.True(t, participants[0].ShareAmount.Equal(dec("100")))
	assert.True(t, participants[1].ShareAmount.Equal(dec("60")))
	assert.True(t, participants[2].ShareAmount.Equal(dec("40")))
}

func TestDeriveSharesPercentageRoundingDriftCorrected(t *testing.T) {
	// Rounded shares of 100.01 sum to 100.00; the missing cent must land on
	// the first participant so the sum stays exact.
	inputs := []ShareInput{
		{ParticipantID: "a", Percentage: dec("33.33")},
		{ParticipantID: "b", Percentage: dec("33.33")},
		{ParticipantID: "c", Percentage: dec("33.34")},
	}
	participants, err := DeriveShares(dec("100.01"), domain.SplitPercentage, inputs)
	require.NoError(t, err)
	assert.True(t, shareSum(participants).Equal(dec("100.01")), "sum=%s", shareSum(participants))
	assert.True(t, participants[0].ShareAmount.Equal(dec("33.34")), "got %s", participants[0].ShareAmount)
}

func TestDeriveSharesPercentageSumMustBe100(t *testing.T) {
	inputs := []ShareInput{
		{ParticipantID: "a", Percentage: dec("60")},
		{ParticipantID: "b", Percentage: dec("60")},
	}
	_, err := DeriveShares(dec("100"), domain.SplitPercentage, inputs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPercentageSum)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeriveSharesPercentageOutOfRange(t *testing.T) {
	inputs := []ShareInput{
		{ParticipantID: "a", Percentage: dec("150")},
		{ParticipantID: "b", Percentage: dec("-50")},
	}
	_, err := DeriveShares(dec("100"), domain.SplitPercentage, inputs)
	assert.ErrorIs(t, err, ErrPercentageRange)
}

func TestDeriveSharesCustomAcceptedAsGiven(t *testing.T) {
	inputs := []ShareInput{
		{ParticipantID: "a", ShareAmount: dec("70.50"), AmountPaid: dec("100")},
		{ParticipantID: "b", ShareAmount: dec("29.50")},
	}
	participants, err := DeriveShares(dec("100"), domain.SplitCustom, inputs)
	require.NoError(t, err)
	assert.True(t, participants[0].ShareAmount.Equal(dec("70.50")))
	assert.True(t, participants[0].AmountPaid.Equal(dec("100")))
	assert.True(t, participants[1].ShareAmount.Equal(dec("29.50")))
}

func TestDeriveSharesCustomMismatchRejected(t *testing.T) {
	inputs := []ShareInput{
		{ParticipantID: "a", ShareAmount: dec("40")},
		{ParticipantID: "b", ShareAmount: dec("40")},
	}
	_, err := DeriveShares(dec("100"), domain.SplitCustom, inputs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShareMismatch)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeriveSharesCustomWithinToleranceUncorrected(t *testing.T) {
	// One cent off is tolerated and the shares are not adjusted.
	inputs := []ShareInput{
		{ParticipantID: "a", ShareAmount: dec("50")},
		{ParticipantID: "b", ShareAmount: dec("49.99")},
	}
	participants, err := DeriveShares(dec("100"), domain.SplitCustom, inputs)
	require.NoError(t, err)
	assert.True(t, participants[1].ShareAmount.Equal(dec("49.99")))
}

func TestDeriveSharesInputValidation(t *testing.T) {
	inputs := equalInputs("a")

	_, err := DeriveShares(dec("0"), domain.SplitEqual, inputs)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = DeriveShares(dec("-5"), domain.SplitEqual, inputs)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = DeriveShares(dec("10.005"), domain.SplitEqual, inputs)
	assert.ErrorIs(t, err, ErrSubCentAmount)

	_, err = DeriveShares(dec("10"), domain.SplitEqual, nil)
	assert.ErrorIs(t, err, ErrNoParticipants)

	_, err = DeriveShares(dec("10"), domain.SplitType("weighted"), inputs)
	assert.ErrorIs(t, err, ErrInvalidSplitType)

	_, err = DeriveShares(dec("10"), domain.SplitEqual, []ShareInput{{ParticipantID: ""}})
	assert.ErrorIs(t, err, ErrEmptyParticipant)

	_, err = DeriveShares(dec("10"), domain.SplitEqual, []ShareInput{{ParticipantID: "a", AmountPaid: dec("-1")}})
	assert.ErrorIs(t, err, ErrNegativePaid)
}

func TestDeriveSharesPercentageZeroShareNeverGoesNegative(t *testing.T) {
	// Rounded shares of 0.01 sum to 0.02; the excess cent must come back from
	// a participant that still has one, never from the 0% participant.
	inputs := []ShareInput{
		{ParticipantID: "a", Percentage: dec("0")},
		{ParticipantID: "b", Percentage: dec("50")},
		{ParticipantID: "c", Percentage: dec("50")},
	}
	participants, err := DeriveShares(dec("0.01"), domain.SplitPercentage, inputs)
	require.NoError(t, err)
	assert.True(t, shareSum(participants).Equal(dec("0.01")), "sum=%s", shareSum(participants))
	for _, p := range participants {
		assert.False(t, p.ShareAmount.IsNegative(), "participant %s has negative share %s", p.ParticipantID, p.ShareAmount)
	}
	assert.True(t, participants[0].ShareAmount.IsZero(), "0%% participant keeps a zero share, got %s", participants[0].ShareAmount)
}

func TestValidateStored(t *testing.T) {
	participants := []domain.SplitParticipant{
		{ParticipantID: "a", ShareAmount: dec("60")},
		{ParticipantID: "b", ShareAmount: dec("40")},
	}
	assert.NoError(t, ValidateStored(dec("100"), participants))
	assert.ErrorIs(t, ValidateStored(dec("120"), participants), apperrors.ErrIntegrityViolation)
}
