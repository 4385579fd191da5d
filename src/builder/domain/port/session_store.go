package port

import "github.com/ezekielbrioso/Florish/src/builder/domain/entity"

// SessionStore guarda las sesiones activas del wizard de armado
type SessionStore interface {
	Put(session *entity.BuilderSession)
	Get(id string) (*entity.BuilderSession, bool)
	Delete(id string)
}
