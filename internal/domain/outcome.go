package domain

// OutcomeKind — итог одной попытки выгрузки.
type OutcomeKind string

const (
	OutcomeCreated    OutcomeKind = "created"    // создана новая запись в ALTEK
	OutcomeIdempotent OutcomeKind = "idempotent" // заказ уже был выгружен, без записи
	OutcomeFailure    OutcomeKind = "failure"
)

// FailureKind — классификация отказа выгрузки.
type FailureKind string

const (
	FailureConfig       FailureKind = "config"        // выгрузка не настроена
	FailureConnectivity FailureKind = "connectivity"  // не удалось открыть соединение
	FailureAllExcluded  FailureKind = "all_excluded"  // все позиции исключены, транзакция не открывалась
	FailureResolution   FailureKind = "resolution"    // SKU не найдены в каталоге ALTEK
	FailureWrite        FailureKind = "write"         // ошибка вставки/коммита
)

// Outcome — терминальный результат одной попытки выгрузки.
// AltekID > 0 только для Created/Idempotent (legacy HTTP-путь его не возвращает).
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Failure FailureKind `json:"failure,omitempty"`
	AltekID int64       `json:"altek_id,omitempty"`
	Message string      `json:"message"`
}

// Failed — попытка завершилась отказом.
func (o Outcome) Failed() bool { return o.Kind == OutcomeFailure }

// Created — конструктор успешного исхода.
func Created(altekID int64, msg string) Outcome {
	return Outcome{Kind: OutcomeCreated, AltekID: altekID, Message: msg}
}

// Idempotent — конструктор исхода "уже выгружен".
func Idempotent(altekID int64, msg string) Outcome {
	return Outcome{Kind: OutcomeIdempotent, AltekID: altekID, Message: msg}
}

// Fail — конструктор отказа.
func Fail(kind FailureKind, msg string) Outcome {
	return Outcome{Kind: OutcomeFailure, Failure: kind, Message: msg}
}

// FailureError — отказ выгрузки как ошибка; сохраняет классификацию,
// чтобы вызывающие могли отличать постоянные отказы от временных.
type FailureError struct {
	Kind    FailureKind
	Message string
}

func (e *FailureError) Error() string { return e.Message }

// Err — ошибка, соответствующая исходу: nil для успешных, *FailureError для отказа.
func (o Outcome) Err() error {
	if !o.Failed() {
		return nil
	}
	return &FailureError{Kind: o.Failure, Message: o.Message}
}
