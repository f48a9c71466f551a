package employee

func NewCreatedEvent(data DraftDTO, result Employee) *CreatedEvent {
	return &CreatedEvent{Data: data, Result: result}
}

func NewUpdatedEvent(data DraftDTO, result Employee) *UpdatedEvent {
	return &UpdatedEvent{Data: data, Result: result}
}

func NewDeletedEvent(result Employee) *DeletedEvent {
	return &DeletedEvent{Result: result}
}

type CreatedEvent struct {
	Data   DraftDTO
	Result Employee
}

type UpdatedEvent struct {
	Data   DraftDTO
	Result Employee
}

type DeletedEvent struct {
	Result Employee
}
