// Package cardtilt is an interactive, tiltable 3D card widget for [Ebitengine].
//
// Cardtilt renders a bank-card style rectangle the user can rotate by
// dragging, flip by tapping, and that a host (for example a carousel) can
// drive externally through configuration pushes. The package is built around
// a single [Controller] per card that owns the card's orientation — yaw,
// pitch, scale, and the front/back flip flag — and arbitrates between the
// competing sources that want to move it: live drag gestures, post-release
// inertia, flip and auto-return animations, and externally bound rotation.
//
// # Quick start
//
// Create a controller, attach a renderer, and pump it from your game loop:
//
//	card := cardtilt.NewController()
//	renderer := cardtilt.NewCardRenderer(320, 200)
//	card.AttachRenderer(renderer)
//	card.Apply(cardtilt.Config{
//		Data:   cardtilt.CardData{Number: "4242424242424242", Holder: "J DOE"},
//		Style:  cardtilt.StyleMidnight,
//		Fields: cardtilt.FieldNumber | cardtilt.FieldHolder,
//	})
//
//	tracker := cardtilt.NewPointerTracker(card, cardtilt.Rect{X: 160, Y: 140, Width: 320, Height: 200})
//
// Then, inside your [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		dt := 1.0 / float64(ebiten.TPS())
//		g.tracker.Update(dt)
//		g.card.Update(dt)
//		g.renderer.Update(dt)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.renderer.Draw(screen, 320, 240)
//	}
//
// # Interaction model
//
// A drag rotates the card freely around its vertical axis (yaw is unbounded,
// full spins are allowed) and tilts it a little vertically (pitch is clamped).
// The first few units of a drag meet a break-away friction that eases open as
// the drag distance grows, so the card resists a grazing touch but follows a
// committed one. Releasing a drag hands the pointer's velocity to an inertia
// session that decays geometrically each frame. A tap flips the card between
// front and back with an overshoot settle, and after a couple of idle seconds
// the card springs back to the rest pose of whichever face it is showing.
//
// External pushes from the host are merged by the controller: while a drag or
// inertia session is live they are ignored, so a stale carousel offset never
// fights the user's finger. Changing the card's data, style, or visible
// fields rebuilds the rendered faces; changing only rotation or scale re-poses
// the existing ones.
//
// # Collaborators
//
// Rendering, input, and haptics are collaborators behind small interfaces.
// The package ships reference implementations for Ebitengine —
// [CardRenderer] and [PointerTracker] — but the [Controller] itself only
// needs something that satisfies [Renderer], which keeps the whole
// interaction core testable without a display.
package cardtilt
