package awserr

import (
	"errors"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/aws/smithy-go"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
)

// Classify erases an error returned by an AWS SDK client. resource names what
// was being accessed (a table name, a key id) and is used in the resulting
// error's payload. The original error is always kept as the cause.
//
// Mapping:
//
//	dynamodb ResourceNotFoundException         => families.NotFoundError ("dynamodb.Table")
//	kms NotFoundException                      => families.NotFoundError ("kms.KeyId")
//	dynamodb ConditionalCheckFailedException   => families.ConflictError (Modified)
//	dynamodb TransactionConflictException      => families.ConflictError (OutOfSync)
//	kms DisabledException, KMSInvalidStateException
//	                                           => families.BadValueError (Invalid)
//	any other smithy.APIError                  => ServiceError
//	other errors from an operation             => families.DependencyError
//	anything else                              => envelope.Wrap
func Classify(err error, resource string) envelope.Opaque {
	if err == nil {
		return nil
	}

	if o, ok := err.(envelope.Opaque); ok {
		return o
	}

	var service, operation string
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		service, operation = opErr.ServiceID, opErr.OperationName
	}

	var ddbNotFound *ddbtypes.ResourceNotFoundException
	if errors.As(err, &ddbNotFound) {
		return envelope.From[families.NotFoundFamily](families.NotFound("dynamodb.Table", resource).Because(err))
	}

	var kmsNotFound *kmstypes.NotFoundException
	if errors.As(err, &kmsNotFound) {
		return envelope.From[families.NotFoundFamily](families.NotFound("kms.KeyId", resource).Because(err))
	}

	var conditionFailed *ddbtypes.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return envelope.From[families.ConflictFamily](families.Conflict(resource, families.Modified).Because(err))
	}

	var txConflict *ddbtypes.TransactionConflictException
	if errors.As(err, &txConflict) {
		return envelope.From[families.ConflictFamily](families.Conflict(resource, families.OutOfSync).Because(err))
	}

	var kmsDisabled *kmstypes.DisabledException
	if errors.As(err, &kmsDisabled) {
		return envelope.From[families.BadValueFamily](
			families.Invalid("KmsKey."+resource+".KeyState", string(kmstypes.KeyStateDisabled)).
				WithReason("expected " + string(kmstypes.KeyStateEnabled)).
				Because(err))
	}

	var kmsInvalidState *kmstypes.KMSInvalidStateException
	if errors.As(err, &kmsInvalidState) {
		return envelope.From[families.BadValueFamily](
			families.Invalid("KmsKey."+resource+".KeyState", "<unavailable>").
				WithReason("expected " + string(kmstypes.KeyStateEnabled)).
				Because(err))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return envelope.From[ServiceFamily](ServiceError{
			Service:   service,
			Operation: operation,
			Code:      apiErr.ErrorCode(),
			Message:   apiErr.ErrorMessage(),
			Fault:     apiErr.ErrorFault(),
			cause:     envelope.Wrap(err),
		})
	}

	if opErr != nil {
		return envelope.From[families.DependencyFamily](families.Dependency(service, nil).WithOperation(operation).Because(err))
	}

	return envelope.Wrap(err)
}

// Retryable reports whether o's chain holds a server-side AWS fault.
func Retryable(o envelope.Opaque) bool {
	se, ok := envelope.Find[ServiceError](o)
	return ok && se.Fault == smithy.FaultServer
}
