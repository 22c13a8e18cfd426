package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart         = errors.New("panier vide, rien à valider")
	ErrPaymentDeclined   = errors.New("paiement refusé")
	ErrAlreadyProcessing = errors.New("une validation est déjà en cours")
	ErrAlreadySucceeded  = errors.New("commande déjà validée")
)

// ValidationError liste les champs requis manquants à l'étape courante.
// Le front affiche le retour champ par champ.
type ValidationError struct {
	Step   Step
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("champs requis manquants à l'étape %d: %s", e.Step, strings.Join(e.Fields, ", "))
}

// PersistenceError signale l'échec d'une des deux écritures de la commande
// (en-tête ou articles). Pas de rollback compensatoire : un en-tête sans
// articles est possible et doit ressortir dans les logs.
type PersistenceError struct {
	Write string // "header" ou "items"
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("échec écriture commande (%s): %v", e.Write, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
