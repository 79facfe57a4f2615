// internal/notify/notify.go
package notify

import (
	"fmt"
	"io"
	"net/http"

	"diet-client/internal/api"
)

// Operations whose failures carry distinct user-facing messages.
const (
	OpLogin              = "login"
	OpProfileUpdate      = "profile-update"
	OpProfileImageUpdate = "profile-image-update"
	OpMealLoad           = "meal-load"
)

// Kind classifies a failed operation for presentation purposes.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindNotImplemented
	KindNetwork
)

// KindOf maps an error to its presentation kind.
func KindOf(err error) Kind {
	switch api.StatusOf(err) {
	case 0:
		return KindNetwork
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusMethodNotAllowed:
		return KindNotImplemented
	default:
		return KindUnknown
	}
}

const (
	msgLoginUnauthorized = "로그인 정보가 올바르지 않습니다. 닉네임과 비밀번호를 확인해주세요."
	msgUnauthorized      = "인증이 필요합니다. 다시 로그인해주세요."
	msgForbidden         = "접근 권한이 없습니다."
	msgMemberNotFound    = "회원을 찾을 수 없습니다."
	msgProfileFailed     = "프로필 수정에 실패했습니다."
	msgMealLoadFailed    = "식사 기록을 불러오는데 실패했습니다."

	msgProfileNotImplemented = "프로필 수정 기능이 백엔드에서 아직 구현되지 않았습니다.\n\n" +
		"백엔드 개발자에게 다음 사항을 요청해주세요:\n" +
		"• MemberController에 PUT /api/members/me 엔드포인트 추가\n" +
		"• 프로필 업데이트 서비스 메서드 구현\n\n" +
		"Spring 로그: 'Request method PUT is not supported'"
)

// MessageFor returns the user-facing message for a failed operation.
func MessageFor(op string, err error) string {
	kind := KindOf(err)

	if op == OpLogin && kind == KindUnauthorized {
		return msgLoginUnauthorized
	}
	if op == OpMealLoad {
		return msgMealLoadFailed
	}

	switch kind {
	case KindUnauthorized:
		return msgUnauthorized
	case KindForbidden:
		return msgForbidden
	case KindNotFound:
		return msgMemberNotFound
	case KindNotImplemented:
		if op == OpProfileUpdate {
			return msgProfileNotImplemented
		}
	}

	if msg := api.MessageOf(err); msg != "" {
		return msg
	}
	return msgProfileFailed
}

// Notifier delivers user-facing failure notifications. Data-layer
// clients only ever see this interface; rendering belongs to callers.
type Notifier interface {
	Notify(op string, err error)
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Notify(string, error) {}

// Console writes notification messages to a writer, one per line.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(op string, err error) {
	fmt.Fprintln(c.out, MessageFor(op, err))
}
