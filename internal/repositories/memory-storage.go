package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// memoryDB is the map-backed variant of the storage contract. A single
// mutex guards all tables; concurrent updates to the same row still apply
// last-write-wins with no optimistic-lock detection, so this backend is
// meant for single-instance, low-contention use.
type memoryDB struct {
	mu sync.RWMutex

	departments map[int64]entities.Department
	equipment   map[int64]entities.Equipment
	maintenance map[int64]entities.Maintenance
	users       map[int64]entities.User

	nextDepartmentID int64
	nextEquipmentID  int64
	nextMaintenance  int64
	nextUserID       int64
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		departments:      make(map[int64]entities.Department),
		equipment:        make(map[int64]entities.Equipment),
		maintenance:      make(map[int64]entities.Maintenance),
		users:            make(map[int64]entities.User),
		nextDepartmentID: 1,
		nextEquipmentID:  1,
		nextMaintenance:  1,
		nextUserID:       1,
	}
}

type MemoryDepartmentRepository struct {
	db *memoryDB
}

func (r *MemoryDepartmentRepository) GetDepartments(_ context.Context) ([]entities.Department, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	departments := make([]entities.Department, 0, len(r.db.departments))
	for _, d := range r.db.departments {
		departments = append(departments, d)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].ID < departments[j].ID })
	return departments, nil
}

func (r *MemoryDepartmentRepository) FindDepartment(_ context.Context, id int64) (*entities.Department, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	d, ok := r.db.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (r *MemoryDepartmentRepository) CreateDepartment(_ context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.departments {
		if existing.Code == payload.Code {
			return nil, apperrors.NewInvalidInputError("department code %q already exists", payload.Code)
		}
	}

	d := departmentFromCreate(payload)
	d.ID = r.db.nextDepartmentID
	r.db.nextDepartmentID++
	r.db.departments[d.ID] = d
	return &d, nil
}

type MemoryEquipmentRepository struct {
	db *memoryDB
}

func matchesFilter(e entities.Equipment, filter types.Filter) bool {
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(e.EquipmentName), search) &&
			!strings.Contains(strings.ToLower(e.EquipmentID), search) {
			return false
		}
	}
	if filter.Status != "" && e.Status != filter.Status {
		return false
	}
	if filter.DepartmentID != nil {
		if !e.DepartmentID.Valid || e.DepartmentID.Int64 != *filter.DepartmentID {
			return false
		}
	}
	return true
}

func (r *MemoryEquipmentRepository) GetEquipment(_ context.Context, filter types.Filter) ([]entities.Equipment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	equipment := make([]entities.Equipment, 0, len(r.db.equipment))
	for _, e := range r.db.equipment {
		if matchesFilter(e, filter) {
			equipment = append(equipment, e)
		}
	}
	sort.Slice(equipment, func(i, j int) bool { return equipment[i].ID < equipment[j].ID })

	if filter.WithPagination {
		if filter.Offset >= len(equipment) {
			return []entities.Equipment{}, nil
		}
		equipment = equipment[filter.Offset:]
		if filter.Limit > 0 && filter.Limit < len(equipment) {
			equipment = equipment[:filter.Limit]
		}
	}
	return equipment, nil
}

func (r *MemoryEquipmentRepository) FindEquipment(_ context.Context, id int64) (*entities.Equipment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	e, ok := r.db.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *MemoryEquipmentRepository) CreateEquipment(_ context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.equipment {
		if existing.EquipmentID == payload.EquipmentID {
			return nil, apperrors.ErrEquipmentCodeTaken
		}
	}

	e := equipmentFromCreate(payload)
	e.ID = r.db.nextEquipmentID
	r.db.nextEquipmentID++
	r.db.equipment[e.ID] = e
	return &e, nil
}

func (r *MemoryEquipmentRepository) UpdateEquipment(_ context.Context, id int64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	e, ok := r.db.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.EquipmentID != nil {
		for _, existing := range r.db.equipment {
			if existing.ID != id && existing.EquipmentID == *payload.EquipmentID {
				return nil, apperrors.ErrEquipmentCodeTaken
			}
		}
	}
	applyEquipmentUpdate(&e, payload)
	r.db.equipment[id] = e
	return &e, nil
}

func (r *MemoryEquipmentRepository) UpdateEquipmentStatus(_ context.Context, id int64, status string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	e, ok := r.db.equipment[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.Status = status
	r.db.equipment[id] = e
	return nil
}

type MemoryMaintenanceRepository struct {
	db *memoryDB
}

func (r *MemoryMaintenanceRepository) collect(keep func(entities.Maintenance) bool) []entities.Maintenance {
	records := make([]entities.Maintenance, 0, len(r.db.maintenance))
	for _, m := range r.db.maintenance {
		if keep(m) {
			records = append(records, m)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (r *MemoryMaintenanceRepository) GetMaintenance(_ context.Context) ([]entities.Maintenance, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.collect(func(entities.Maintenance) bool { return true }), nil
}

func (r *MemoryMaintenanceRepository) GetMaintenanceByEquipment(_ context.Context, equipmentID int64) ([]entities.Maintenance, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.collect(func(m entities.Maintenance) bool {
		return m.EquipmentID.Valid && m.EquipmentID.Int64 == equipmentID
	}), nil
}

func (r *MemoryMaintenanceRepository) CreateMaintenance(_ context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m := maintenanceFromCreate(payload)
	m.ID = r.db.nextMaintenance
	r.db.nextMaintenance++
	r.db.maintenance[m.ID] = m
	return &m, nil
}

type MemoryUserRepository struct {
	db *memoryDB
}

func (r *MemoryUserRepository) GetUsers(_ context.Context) ([]entities.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	users := make([]entities.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *MemoryUserRepository) FindUser(_ context.Context, id int64) (*entities.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindUserByUsername(_ context.Context, username string) (*entities.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Username == payload.Username {
			return nil, apperrors.ErrUsernameTaken
		}
	}

	u := userFromCreate(payload)
	u.ID = r.db.nextUserID
	r.db.nextUserID++
	r.db.users[u.ID] = u
	return &u, nil
}

func (r *MemoryUserRepository) UpdateUserPassword(_ context.Context, id int64, password string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Password = password
	r.db.users[id] = u
	return nil
}
