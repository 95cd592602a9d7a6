// Package session mantiene el registro persistido de "quién opera la
// terminal" y qué le está permitido hacer. Es un caché puro de lectura y
// escritura: ninguna llamada de red se origina aquí; los flujos de login lo
// pueblan y la UI lo consulta.
package session

import (
	"sync"

	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// SnapshotName nombre del snapshot persistido (mismo que el cliente web).
const SnapshotName = "omnipos-user-storage"

// Persister puerto de persistencia de snapshots: carga al arranque, guardado
// en cada mutación.
type Persister interface {
	SaveSnapshot(name string, v any) error
	LoadSnapshot(name string, v any) (bool, error)
}

// snapshot estado serializable del store.
//
// Invariante de actor: merchant != nil con user == nil significa que opera el
// dueño; user != nil significa que opera un empleado (la identidad del dueño
// puede seguir cacheada para mostrarla en la navegación).
type snapshot struct {
	Merchant              *entity.Merchant     `json:"merchant"`
	User                  *entity.User         `json:"user"`
	UserManagementEnabled bool                 `json:"user_management_enabled"`
	AvailableUsers        []entity.UserSummary `json:"available_users"`
}

// Store contenedor de estado de sesión, construible e inyectable (no hay
// singleton de paquete). Seguro para lectura concurrente.
type Store struct {
	mu        sync.RWMutex
	state     snapshot
	persister Persister
	log       *logger.Logger
}

// New construye el store y carga el snapshot persistido si existe.
func New(persister Persister, log *logger.Logger) *Store {
	s := &Store{persister: persister, log: log}
	if persister != nil {
		if _, err := persister.LoadSnapshot(SnapshotName, &s.state); err != nil {
			log.Warn().Err(err).Msg("sesión: snapshot ilegible, se arranca vacío")
			s.state = snapshot{}
		}
	}
	return s
}

// ── Setters (sobrescritura sin validación) ────────────────────────────────────

// SetMerchant cachea la identidad del dueño (nil la borra).
func (s *Store) SetMerchant(m *entity.Merchant) {
	s.mu.Lock()
	s.state.Merchant = m
	s.persistLocked()
	s.mu.Unlock()
}

// SetUser fija al empleado que opera la terminal (nil vuelve al dueño).
func (s *Store) SetUser(u *entity.User) {
	s.mu.Lock()
	s.state.User = u
	s.persistLocked()
	s.mu.Unlock()
}

// SetUserManagementEnabled fija el flag devuelto en el login del dueño.
func (s *Store) SetUserManagementEnabled(enabled bool) {
	s.mu.Lock()
	s.state.UserManagementEnabled = enabled
	s.persistLocked()
	s.mu.Unlock()
}

// SetAvailableUsers fija la nómina de empleados para la selección de perfil.
func (s *Store) SetAvailableUsers(users []entity.UserSummary) {
	s.mu.Lock()
	s.state.AvailableUsers = users
	s.persistLocked()
	s.mu.Unlock()
}

// Logout resetea los cuatro campos. No toca los tokens del almacenamiento
// duradero: el llamador los limpia por separado.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = snapshot{}
	s.persistLocked()
	s.mu.Unlock()
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// Merchant devuelve la identidad del dueño cacheada, o nil.
func (s *Store) Merchant() *entity.Merchant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Merchant
}

// User devuelve al empleado que opera, o nil si opera el dueño.
func (s *Store) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

// UserManagementEnabled indica si el comercio tiene cuentas de personal.
func (s *Store) UserManagementEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserManagementEnabled
}

// AvailableUsers devuelve la nómina cacheada para selección de perfil.
func (s *Store) AvailableUsers() []entity.UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.UserSummary, len(s.state.AvailableUsers))
	copy(out, s.state.AvailableUsers)
	return out
}

// HasPermission decide si el actor actual puede ejecutar la acción code.
//   - Dueño operando (merchant sin user): siempre true.
//   - Empleado con rol: true sii el rol contiene el código.
//   - Sin actor: false.
func (s *Store) HasPermission(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Merchant != nil && s.state.User == nil {
		return true
	}
	if s.state.User != nil && s.state.User.Role != nil {
		return s.state.User.Role.HasPermission(code)
	}
	return false
}

// persistLocked guarda el snapshot; un fallo de persistencia no rompe la
// mutación (el estado en memoria manda), solo se registra.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveSnapshot(SnapshotName, &s.state); err != nil {
		s.log.Error().Err(err).Msg("sesión: persistir snapshot")
	}
}
