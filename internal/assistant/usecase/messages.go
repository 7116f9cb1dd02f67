package usecase

import (
	"errors"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/calendar"
)

// User-facing outcome messages, Chinese to match the assistant's audience.
const (
	msgCreated          = "已创建事件: %s"
	msgUpdated          = "已更新事件: %s"
	msgDeleted          = "已删除事件: %s"
	msgNoMatch          = "没有找到标题包含 '%s' 的事件"
	msgAmbiguous        = "找到 %d 个匹配的事件，请明确指定："
	msgNeedDeleteTarget = "请提供要删除的事件标题或ID"
	msgNeedUpdateTarget = "请提供要更新的事件标题或ID"
	msgUnderstood       = "已理解您的请求"

	msgCannotInterpret  = "无法理解您的指令，请换一种说法"
	msgUnknownAction    = "暂不支持这种操作"
	msgMalformedTime    = "无法解析指令中的时间，请使用明确的日期或时间"
	msgMissingTitle     = "请提供事件标题"
	msgMissingStartTime = "请提供事件的开始时间"

	msgAuthFailed       = "日历服务认证失败，请检查配置"
	msgPermissionDenied = "没有权限执行该日历操作"
	msgEventNotFound    = "事件不存在或已被删除"
	msgConnection       = "无法连接到日历服务，请稍后重试"
	msgInvalidRange     = "结束时间不能早于开始时间"
	msgExecutionFailed  = "执行命令时出错"
)

// interpretFailureMessage maps interpretation-stage errors onto the reply
// shown to the user. The pipeline never surfaces raw errors.
func interpretFailureMessage(err error) string {
	switch {
	case errors.Is(err, assistant.ErrUnknownAction):
		return msgUnknownAction
	case errors.Is(err, assistant.ErrMalformedTime):
		return msgMalformedTime
	default:
		return msgCannotInterpret
	}
}

// storeFailureMessage maps calendar-layer errors onto the reply shown to
// the user, keeping permission and connectivity problems distinguishable.
func storeFailureMessage(err error) string {
	switch {
	case errors.Is(err, calendar.ErrAuthFailed):
		return msgAuthFailed
	case errors.Is(err, calendar.ErrPermissionDenied):
		return msgPermissionDenied
	case errors.Is(err, calendar.ErrEventNotFound):
		return msgEventNotFound
	case errors.Is(err, calendar.ErrConnection):
		return msgConnection
	case errors.Is(err, calendar.ErrInvalidTimeRange):
		return msgInvalidRange
	default:
		return msgExecutionFailed
	}
}
