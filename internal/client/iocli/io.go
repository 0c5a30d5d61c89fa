// Package iocli прячет терминальный ввод-вывод за интерфейсом,
// чтобы команды CLI можно было тестировать без настоящего tty.
package iocli

//go:generate moq -out io_mock.go . IO

// IO — всё, что нужно командам от терминала: печать, построчный
// ввод и чтение пароля без эха. Write позволяет отдавать IO туда,
// где ожидается io.Writer.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
