// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/kont"
)

// ConnectClientBind connects a client and passes the connection to f.
// Fuses Perform(ConnectClient[S]{}) + Bind.
func ConnectClientBind[S Server, B any](f func(*Conn[S]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(ConnectClient[S]{}), f)
}

// ConnectServerBind offers s to the next client and passes the result
// of the session to f.
// Fuses Perform(ConnectServer[S]{Server: s}) + Bind.
func ConnectServerBind[S Server, B any](s S, f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(ConnectServer[S]{Server: s}), f)
}

// ReleaseThen releases c and then continues with next.
// Fuses Perform(Release[S]{Conn: c}) + Then.
func ReleaseThen[S Server, B any](c *Conn[S], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Release[S]{Conn: c}), next)
}

// ReleaseDone releases c and returns a.
// Fuses Perform(Release[S]{Conn: c}) + Then + Pure.
func ReleaseDone[S Server, A any](c *Conn[S], a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Release[S]{Conn: c}), kont.Pure(a))
}

// Session connects a client, applies use to the bound server, releases,
// and returns Right of use's result. It returns Left without calling use
// if the gate closed before a server bound.
func Session[S Server, A any](use func(S) A) kont.Eff[kont.Either[struct{}, A]] {
	return ConnectClientBind(func(c *Conn[S]) kont.Eff[kont.Either[struct{}, A]] {
		if c == nil {
			return kont.Pure(kont.Left[struct{}, A](struct{}{}))
		}
		return ReleaseDone(c, kont.Right[struct{}, A](use(c.Server())))
	})
}
