package pkg

import "fmt"

// HTTPError é o corpo de erro devolvido pela API. O campo "mensagem" é o
// texto exibido ao operador pelas telas.
type HTTPError struct {
	Codigo   string `json:"codigo"`
	Mensagem string `json:"mensagem"`
}

// AppError carrega um erro de domínio com o status HTTP que ele deve
// produzir na borda.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Codigo: e.Code, Mensagem: e.Message}
}
