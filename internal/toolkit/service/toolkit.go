package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	toolkiterrors "powervoting/internal/toolkit/errors"
	"powervoting/internal/toolkit/validator"
	"powervoting/pkg/config"
	"powervoting/pkg/contracts"
	apperrors "powervoting/pkg/errors"
	"powervoting/pkg/format"
	"powervoting/pkg/logger"
	"powervoting/pkg/model"
	"powervoting/pkg/sanitizer"
)

type ToolkitService interface {
	MarkdownToText(ctx context.Context, req *model.MarkdownRequest) (*model.TextResponse, error)
	FormatBytes(ctx context.Context, req *model.BytesRequest) (*model.FormattedResponse, error)
	FormatDecimal(ctx context.Context, req *model.DecimalRequest) (*model.FormattedResponse, error)
	SimplifyFraction(ctx context.Context, req *model.FractionRequest) (*model.FractionResponse, error)
	DecodeHex(ctx context.Context, req *model.HexRequest) (*model.TextResponse, error)
	EncodeBase64URL(ctx context.Context, req *model.Base64Request) (*model.EncodedResponse, error)
	HasDuplicates(ctx context.Context, req *model.DuplicatesRequest) (*model.DuplicatesResponse, error)
	IsNonEmpty(ctx context.Context, req *model.NonEmptyRequest) (*model.NonEmptyResponse, error)

	ResolveContract(ctx context.Context, kind string, networkID int64) (*model.ContractResponse, error)
	ActorAddress(ctx context.Context, networkID int64, actorID uint64) (*model.ActorAddressResponse, error)
}

type toolkitService struct {
	validator *validator.ToolkitValidator
	contracts *contracts.AddressBook
	log       *logger.Logger
}

func NewToolkitService(v *validator.ToolkitValidator, cfg *config.Config) ToolkitService {
	return &toolkitService{
		validator: v,
		contracts: cfg.Contracts,
		log:       cfg.Log,
	}
}

func (s *toolkitService) MarkdownToText(ctx context.Context, req *model.MarkdownRequest) (*model.TextResponse, error) {
	if err := s.check(ctx, "MarkdownToText", req); err != nil {
		return nil, err
	}

	text, err := sanitizer.MarkdownToTextContext(ctx, req.Markdown)
	if err != nil {
		s.log.Warn("Markdown conversion abandoned",
			"length", len(req.Markdown),
			"error", err,
		)
		return nil, apperrors.Timeout("Request cancelled")
	}
	return &model.TextResponse{Text: text}, nil
}

func (s *toolkitService) FormatBytes(ctx context.Context, req *model.BytesRequest) (*model.FormattedResponse, error) {
	if err := s.check(ctx, "FormatBytes", req); err != nil {
		return nil, err
	}
	return &model.FormattedResponse{Formatted: format.FormatBytesString(string(req.Bytes))}, nil
}

func (s *toolkitService) FormatDecimal(ctx context.Context, req *model.DecimalRequest) (*model.FormattedResponse, error) {
	if err := s.check(ctx, "FormatDecimal", req); err != nil {
		return nil, err
	}

	decimals := format.DefaultDecimals
	if req.Decimals != nil {
		decimals = *req.Decimals
	}
	return &model.FormattedResponse{Formatted: format.FormatDecimal(string(req.Value), decimals)}, nil
}

func (s *toolkitService) SimplifyFraction(ctx context.Context, req *model.FractionRequest) (*model.FractionResponse, error) {
	if err := s.check(ctx, "SimplifyFraction", req); err != nil {
		return nil, err
	}

	fraction, err := format.SimplifyFraction(*req.Numerator, *req.Denominator)
	if err != nil {
		if errors.Is(err, format.ErrZeroDenominator) {
			return nil, apperrors.InvalidInputWrap("denominator must not be zero", err)
		}
		return nil, apperrors.Internal("failed to simplify fraction", err)
	}
	return &model.FractionResponse{Fraction: fraction}, nil
}

func (s *toolkitService) DecodeHex(ctx context.Context, req *model.HexRequest) (*model.TextResponse, error) {
	if err := s.check(ctx, "DecodeHex", req); err != nil {
		return nil, err
	}
	return &model.TextResponse{Text: sanitizer.DecodeHexText(req.Hex)}, nil
}

func (s *toolkitService) EncodeBase64URL(ctx context.Context, req *model.Base64Request) (*model.EncodedResponse, error) {
	if err := s.check(ctx, "EncodeBase64URL", req); err != nil {
		return nil, err
	}
	return &model.EncodedResponse{Encoded: sanitizer.ToBase64URL(req.Text)}, nil
}

func (s *toolkitService) HasDuplicates(ctx context.Context, req *model.DuplicatesRequest) (*model.DuplicatesResponse, error) {
	if err := s.check(ctx, "HasDuplicates", req); err != nil {
		return nil, err
	}
	return &model.DuplicatesResponse{HasDuplicates: sanitizer.HasDuplicates(req.Items)}, nil
}

func (s *toolkitService) IsNonEmpty(ctx context.Context, req *model.NonEmptyRequest) (*model.NonEmptyResponse, error) {
	if err := s.check(ctx, "IsNonEmpty", req); err != nil {
		return nil, err
	}
	return &model.NonEmptyResponse{NonEmpty: sanitizer.IsNonEmptyPtr(req.Value)}, nil
}

func (s *toolkitService) ResolveContract(ctx context.Context, kind string, networkID int64) (*model.ContractResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Request cancelled")
	}

	address, ok := s.contracts.Resolve(networkID, kind)
	if !ok {
		s.log.Debug("Contract address not configured",
			"kind", kind,
			"network_id", networkID,
		)
		return nil, apperrors.Wrap(
			toolkiterrors.ErrContractNotDeployed,
			apperrors.CodeNotFound,
			fmt.Sprintf("contract %s not found on network %d", kind, networkID),
			http.StatusNotFound,
		)
	}

	return &model.ContractResponse{
		Kind:      kind,
		NetworkID: networkID,
		Address:   address,
	}, nil
}

func (s *toolkitService) ActorAddress(ctx context.Context, networkID int64, actorID uint64) (*model.ActorAddressResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Request cancelled")
	}

	address, ok := contracts.ActorAddress(networkID, actorID)
	if !ok {
		return nil, apperrors.Wrap(
			toolkiterrors.ErrUnknownNetwork,
			apperrors.CodeNotFound,
			fmt.Sprintf("network %d not found", networkID),
			http.StatusNotFound,
		)
	}
	return &model.ActorAddressResponse{Address: address}, nil
}

// check rejects cancelled requests and runs struct validation.
func (s *toolkitService) check(ctx context.Context, operation string, req any) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Timeout("Request cancelled")
	}

	if err := s.validator.Validate(req); err != nil {
		s.log.Warn("Request validation failed",
			"operation", operation,
			"error", err,
		)

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return apperrors.Validation("Request validation failed", validationErrs.Details())
		}
		return apperrors.InvalidInputWrap("Invalid request", err)
	}
	return nil
}
