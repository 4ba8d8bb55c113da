package dto

import "errors"

var ErrTicketRequired = errors.New("ticket required")

// Validate проверяет инварианты CreatePassRequest: билет обязателен,
// всё остальное дефолтится дальше по пайплайну
func (r CreatePassRequest) Validate() error {
	if r.Ticket == nil {
		return ErrTicketRequired
	}
	return nil
}
