package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты на состав наборов методов: это единственное место, где задаётся
// внешняя поверхность сервиса, и ошибка в одну строку меняет семантику
// целого пути (лимит на экстренное чтение, закрытая регистрация и т.п.).

// TestThrottledMethods_AuthOnly —
// под лимит подпадают только аутентификационные методы; чтение по
// экстренному токену не ограничивается никогда.
func TestThrottledMethods_AuthOnly(t *testing.T) {
	t.Parallel()

	require.Contains(t, throttledMethods, "/healthrecord.v1.AuthService/Register")
	require.Contains(t, throttledMethods, "/healthrecord.v1.AuthService/Login")
	require.Contains(t, throttledMethods, "/healthrecord.v1.AuthService/Refresh")

	require.NotContains(t, throttledMethods, "/healthrecord.v1.EmergencyService/ResolveToken")
	require.Len(t, throttledMethods, 3)
}

// TestPublicMethods_ContainEmergencyResolve —
// экстренное чтение доступно без access-токена, как и сами методы
// аутентификации и служебные health/reflection.
func TestPublicMethods_ContainEmergencyResolve(t *testing.T) {
	t.Parallel()

	require.Contains(t, publicMethods, "/healthrecord.v1.EmergencyService/ResolveToken")
	require.Contains(t, publicMethods, "/healthrecord.v1.AuthService/Register")
	require.Contains(t, publicMethods, "/healthrecord.v1.AuthService/Login")
	require.Contains(t, publicMethods, "/healthrecord.v1.AuthService/Refresh")
	require.Contains(t, publicMethods, "/grpc.health.v1.Health/Check")
}
