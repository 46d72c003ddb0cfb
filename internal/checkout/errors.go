package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки загрузки черновика (шаг data bridge). Все они терминальны для
// текущей загрузки: пользователь возвращается на страницу корзины.
var (
	// ErrDraftExpired - черновик старше допустимого окна (3600 секунд).
	ErrDraftExpired = errors.New("черновик заказа просрочен")
	// ErrDraftInvalid - черновик не прошел проверку содержимого.
	ErrDraftInvalid = errors.New("черновик заказа некорректен")
	// ErrNoPaymentMethod - способ оплаты не выбран или неизвестен.
	ErrNoPaymentMethod = errors.New("способ оплаты не выбран")
)

// CartInvalidError - серверная проверка корзины не пройдена.
// Reasons содержит все причины дословно, в порядке, выданном сервером:
// каждая показывается пользователю отдельно.
type CartInvalidError struct {
	Reasons []string
}

func (e *CartInvalidError) Error() string {
	return fmt.Sprintf("корзина не прошла проверку: %s", strings.Join(e.Reasons, "; "))
}
