package state

import "sync"

// State is the whole client-side tree, one field per slice.
type State struct {
	User         UserState
	Recipes      RecipesState
	SingleRecipe SingleRecipeState
	UserRecipes  UserRecipesState
}

// NewState returns the documented default shape: anonymous user, empty
// collections, no loading flags, zero errors.
func NewState() State {
	return State{}
}

// Reduce routes a through every slice reducer. Slices that do not
// recognize the action return their input unchanged, so one Dispatch is
// atomic across the tree.
func Reduce(s State, a Action) State {
	return State{
		User:         ReduceUser(s.User, a),
		Recipes:      ReduceRecipes(s.Recipes, a),
		SingleRecipe: ReduceSingleRecipe(s.SingleRecipe, a),
		UserRecipes:  ReduceUserRecipes(s.UserRecipes, a),
	}
}

// Store is the single source of truth. It is only ever written through
// Dispatch; reducers never mutate the previous state, so a State value
// handed out by GetState stays stable while callers read it.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

// NewStore returns a store holding the default state shape.
func NewStore() *Store {
	return &Store{
		state:     NewState(),
		listeners: make(map[int]func(State)),
	}
}

// Dispatch applies a to the tree and notifies subscribers with the new
// state. Dispatches are serialized; each action is applied atomically.
func (st *Store) Dispatch(a Action) {
	st.mu.Lock()
	st.state = Reduce(st.state, a)
	next := st.state
	listeners := make([]func(State), 0, len(st.listeners))
	for _, fn := range st.listeners {
		listeners = append(listeners, fn)
	}
	st.mu.Unlock()

	// Listeners run outside the lock so they may call GetState or
	// Dispatch without deadlocking.
	for _, fn := range listeners {
		fn(next)
	}
}

// GetState returns the current state value.
func (st *Store) GetState() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Subscribe registers fn to run after every dispatch. The returned
// function removes the subscription.
func (st *Store) Subscribe(fn func(State)) func() {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.listeners[id] = fn
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		delete(st.listeners, id)
		st.mu.Unlock()
	}
}
