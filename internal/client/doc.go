// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the vault application.
//
// It builds storage, the cipher, the breach checker, the strength calculator,
// the icon resolver, the event bus and the TOTP generator from config, hands
// them to the service layer and runs the terminal UI until the user quits.
package client
