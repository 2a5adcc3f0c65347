package providers

// Outcome buckets an HTTP status code.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeAuthenticationError
	OutcomeBadRequestError
	OutcomeOutdatedRequestError
	OutcomeFailedRequestError
)

// Classify maps a status code to an Outcome. It is total over int.
func Classify(statusCode int) Outcome {
	switch {
	case statusCode >= 200 && statusCode <= 299:
		return OutcomeSuccess
	case statusCode >= 400 && statusCode <= 500:
		return OutcomeAuthenticationError
	case statusCode >= 501 && statusCode <= 599:
		return OutcomeBadRequestError
	case statusCode >= 600 && statusCode <= 799:
		return OutcomeOutdatedRequestError
	default:
		return OutcomeFailedRequestError
	}
}

// Err returns the sentinel for a failure outcome, or nil for success.
func (o Outcome) Err() error {
	switch o {
	case OutcomeSuccess:
		return nil
	case OutcomeAuthenticationError:
		return ErrAuthentication
	case OutcomeBadRequestError:
		return ErrBadRequest
	case OutcomeOutdatedRequestError:
		return ErrOutdatedRequest
	default:
		return ErrFailedRequest
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAuthenticationError:
		return "authentication_error"
	case OutcomeBadRequestError:
		return "bad_request"
	case OutcomeOutdatedRequestError:
		return "outdated_request"
	default:
		return "failed_request"
	}
}
