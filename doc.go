// Package stocksim provides the domain model of a single player stock market
// simulator played from a terminal.
//
// The core types are:
//   - Stock: a named instrument whose price drifts by at most 5% per simulated day,
//     never falling below $1.00.
//   - Portfolio: a cash balance and a set of integer share holdings, with add and
//     remove operations that never leave the portfolio in a partial state.
//   - User: an authenticated player owning one Portfolio. Buy and Sell move cash
//     and shares together, or not at all, and report an Outcome.
//   - Market: the fixed roster of instruments and the persisted credential store
//     used to sign up and log in players.
//
// Rendering lives in the renderer package, the interactive loop in the session
// package and the `stocksim` command-line tool in cmd.
package stocksim
