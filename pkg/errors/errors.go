package errors

// Закрытый перечень видов ошибок действий моста. Эти строки возвращаются
// клиенту дословно в поле "error" и никогда не пересекают границу
// диспетчера в виде паники.
const (
	ScaleOutOfRange      = "scale_out_of_range"
	Stopped              = "stopped"
	NoObjectHeld         = "no_object_held"
	TargetOrPoseRequired = "target_or_pose_required"
	UnknownZone          = "unknown_zone"
	UnknownTool          = "unknown_tool"
	InvalidArguments     = "invalid_arguments"
	PersistFailed        = "persist_failed"
)

// Стандартные сообщения для HTTP-ответов.
const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
)
