package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestDomainReasonsMapToCodes() {
	testCases := []struct {
		reason errors.Reason
		code   errors.Code
		status int
	}{
		{errors.ReasonNotFound, errors.CodeNotFound, http.StatusNotFound},
		{errors.ReasonValidation, errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.ReasonDuplicateKey, errors.CodeAlreadyExists, http.StatusConflict},
		{errors.ReasonUnknownSkill, errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.ReasonItemNotInInventory, errors.CodeFailedPrecondition, http.StatusBadRequest},
		{errors.ReasonAmbiguousEquip, errors.CodeFailedPrecondition, http.StatusBadRequest},
		{errors.ReasonMaxLevelReached, errors.CodeFailedPrecondition, http.StatusBadRequest},
		{errors.ReasonSpellNotKnown, errors.CodeFailedPrecondition, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		s.Run(tc.reason.String(), func() {
			err := errors.Domain(tc.reason, "boom")
			s.Equal(tc.code, err.Code)
			s.Equal(tc.status, err.Code.HTTPStatus())
			s.True(errors.HasReason(err, tc.reason))
		})
	}

	s.Equal(http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
}

func (s *ErrorsTestSuite) TestWrapPreservesReasonAndMeta() {
	base := errors.Domainf(errors.ReasonSpellAlreadyKnown, "spell %s already known", "fireball").
		WithMeta("spell_id", "sp-1")

	wrapped := errors.Wrap(base, "failed to add spell")
	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal(errors.ReasonSpellAlreadyKnown, wrapped.Reason)
	s.Equal("sp-1", wrapped.Meta["spell_id"])

	// metadata added to the wrapper does not leak into the cause
	wrapped.WithMeta("character_id", "char-1")
	s.NotContains(base.Meta, "character_id")

	twice := fmt.Errorf("outer: %w", wrapped)
	s.True(errors.HasReason(twice, errors.ReasonSpellAlreadyKnown))
	s.True(errors.IsFailedPrecondition(twice))
	s.True(stderrors.Is(twice, errors.Domain(errors.ReasonSpellAlreadyKnown, "")))
	s.False(stderrors.Is(twice, errors.Domain(errors.ReasonSpellNotKnown, "")))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	err := errors.Wrap(stderrors.New("connection refused"), "failed to save")
	s.True(errors.IsInternal(err))
	s.Equal(errors.ReasonNone, errors.GetReason(err))
	s.Contains(err.Error(), "connection refused")

	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCodeDropsReason() {
	err := errors.WrapWithCode(errors.NotFound("race missing"), errors.CodeInvalidArgument, "bad reference")
	s.True(errors.IsInvalidArgument(err))
	s.Equal(errors.ReasonNotFound, errors.GetReason(err), "reason is still found on the cause")
	s.Equal(errors.ReasonNone, err.Reason)
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Run("no errors builds nil", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "Borin", vb)
		errors.ValidateRange("level", 3, 1, 10, vb)
		s.NoError(vb.Build())
	})

	s.Run("collects field errors", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "  ", vb)
		errors.ValidateRange("level", 11, 1, 10, vb)
		errors.ValidateMaxLength("backstory", "abcdef", 5, vb)
		errors.ValidateEnum("size", "Colossal", []string{"Small", "Medium"}, vb)

		err := vb.Build()
		s.Require().Error(err)
		s.True(errors.IsValidation(err))
		s.True(errors.IsInvalidArgument(err))

		fields := errors.GetFieldErrors(err)
		s.Equal([]string{"is required"}, fields["name"])
		s.Equal([]string{"must be between 1 and 10"}, fields["level"])
		s.Equal([]string{"must be no more than 5 characters"}, fields["backstory"])
		s.Equal([]string{"must be one of: Small, Medium"}, fields["size"])
		s.Contains(err.Error(), "backstory: must be no more than 5 characters; level:")
	})

	s.Run("merge prefixes nested fields", func() {
		inner := errors.NewValidationBuilder().Field("level", "must be odd").Build()

		vb := errors.NewValidationBuilder()
		vb.Merge("abilities[1]", inner)
		vb.Merge("subclasses[0]", errors.NotFound("gone"))

		fields := errors.GetFieldErrors(vb.Build())
		s.Equal([]string{"must be odd"}, fields["abilities[1].level"])
		s.Equal([]string{"gone"}, fields["subclasses[0]"])
	})
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	s.Run("domain error carries reason detail", func() {
		err := errors.Wrap(errors.Domain(errors.ReasonItemNotEquipped, "not equipped"), "unequip failed")

		st, ok := status.FromError(errors.ToGRPCError(err))
		s.Require().True(ok)
		s.Equal(codes.FailedPrecondition, st.Code())
		s.Equal("unequip failed", st.Message())

		s.Require().Len(st.Details(), 1)
		info, ok := st.Details()[0].(*errdetails.ErrorInfo)
		s.Require().True(ok)
		s.Equal("ITEM_NOT_EQUIPPED", info.GetReason())
		s.Equal(errors.ErrorDomain, info.GetDomain())
	})

	s.Run("validation error carries field violations", func() {
		err := errors.NewValidationBuilder().RequiredField("name").Build()

		st, _ := status.FromError(errors.ToGRPCError(err))
		s.Equal(codes.InvalidArgument, st.Code())
		s.Require().Len(st.Details(), 2)
		br, ok := st.Details()[1].(*errdetails.BadRequest)
		s.Require().True(ok)
		s.Equal("name", br.GetFieldViolations()[0].GetField())
	})

	s.Run("plain error becomes internal", func() {
		st, _ := status.FromError(errors.ToGRPCError(stderrors.New("kaboom")))
		s.Equal(codes.Internal, st.Code())
	})

	s.Run("nil stays nil", func() {
		s.NoError(errors.ToGRPCError(nil))
	})
}

func (s *ErrorsTestSuite) TestRootMessageAndStatus() {
	root := errors.Domain(errors.ReasonSpellNotKnown, "character does not know spell spell_1")
	wrapped := errors.Wrapf(errors.Wrap(root, "failed to forget spell"), "request failed")

	s.Equal("request failed", errors.GetMessage(wrapped))
	s.Equal("character does not know spell spell_1", errors.GetRootMessage(wrapped))
	s.Equal(http.StatusBadRequest, errors.HTTPStatus(wrapped))
	s.Equal(http.StatusNotFound, errors.HTTPStatus(errors.NotFound("gone")))
	s.Equal(http.StatusConflict, errors.HTTPStatus(errors.Domain(errors.ReasonDuplicateKey, "taken")))
	s.Equal(http.StatusInternalServerError, errors.HTTPStatus(stderrors.New("kaboom")))
	s.Equal("kaboom", errors.GetRootMessage(stderrors.New("kaboom")))
}
