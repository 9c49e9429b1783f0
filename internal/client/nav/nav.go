// Package nav реализует проверку переходов между экранами клиента.
// Решение принимается синхронно по состоянию сессии, без ввода-вывода.
package nav

// Route описывает экран клиента.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
}

// Decision - результат проверки перехода.
type Decision int

const (
	// Proceed разрешает переход на запрошенный экран.
	Proceed Decision = iota
	// RedirectLogin отправляет анонимного пользователя на экран входа.
	RedirectLogin
	// RedirectHome отправляет аутентифицированного пользователя на главный экран.
	RedirectHome
)

const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathItems    = "/items"
	PathAccounts = "/accounts"
	PathReports  = "/reports"
)

// Routes - таблица экранов клиента.
var Routes = []Route{
	{Path: PathHome, Name: "home", RequiresAuth: false},
	{Path: PathLogin, Name: "login", RequiresAuth: false},
	{Path: PathRegister, Name: "register", RequiresAuth: false},
	{Path: PathItems, Name: "items", RequiresAuth: true},
	{Path: PathAccounts, Name: "accounts", RequiresAuth: true},
	{Path: PathReports, Name: "reports", RequiresAuth: true},
}

// Decide проверяет переход на route при текущем состоянии сессии.
func Decide(route Route, authenticated bool) Decision {
	if route.RequiresAuth && !authenticated {
		return RedirectLogin
	}
	if (route.Path == PathLogin || route.Path == PathRegister) && authenticated {
		return RedirectHome
	}
	return Proceed
}

// Find возвращает экран по пути. Второе значение false, если экран не найден.
func Find(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
