package cli

import (
	"context"
)

// getSimpleText и getPassword подменяются в тестах на заглушки.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login запрашивает имя пользователя или email и пароль и выполняет вход.
// При успехе сессия сохраняется в файловом хранилище клиента.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	// Сервер сообщает об отказе в аутентификации статусом 400
	// с текстом причины, ответ 401 сюда не попадает.
	if err := a.session.Login(ctx, login, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", a.status())
	return nil
}

// Register запрашивает данные учётной записи и регистрирует её.
// После регистрации требуется отдельный вход.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	profile, err := a.session.Register(ctx, username, email, password)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registered", profile.Username, "- now log in with 'login'")
	return nil
}

// Logout переводит сессию в анонимное состояние и чистит хранилище.
func (a *App) Logout(_ context.Context) error {
	a.session.Logout()
	printlnFn("Logged out")
	return nil
}

// Whoami показывает профиль текущего пользователя по данным сервера.
func (a *App) Whoami(ctx context.Context) error {
	profile, err := a.api.Me(ctx)
	if err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}
	printlnFn(formatProfile(profile))
	return nil
}
