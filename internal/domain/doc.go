// Package domain contains the content records of the application: quiz
// questions, planets and stars. They are plain values, independent of any
// storage or presentation mechanism.
package domain
